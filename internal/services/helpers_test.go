package services

import (
	"github.com/alexedwards/argon2id"
)

// fastHashParams keep argon2id cheap in tests.
var fastHashParams = &argon2id.Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}
