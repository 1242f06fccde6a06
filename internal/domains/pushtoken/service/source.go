package service

//go:generate go run go.uber.org/mock/mockgen -source=./source.go -destination=../mocks/source_mock.go -package=mocks

import "context"

// TokenSource is the device side of push delivery: it hands out the current
// token, can revoke it, and reports rotations.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	DeleteToken(ctx context.Context) error
	Rotations() <-chan string
}

// StaticSource wraps a token reported by a client over HTTP. Revocation is
// done by the device itself, so DeleteToken does nothing and no rotations
// are ever reported.
type StaticSource struct {
	token string
}

func NewStaticSource(token string) *StaticSource {
	return &StaticSource{token: token}
}

func (s *StaticSource) Token(_ context.Context) (string, error) {
	return s.token, nil
}

func (s *StaticSource) DeleteToken(_ context.Context) error {
	return nil
}

func (s *StaticSource) Rotations() <-chan string {
	return nil
}
