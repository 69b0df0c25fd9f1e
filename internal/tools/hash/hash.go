// Package hash computes a fixed set of content digests over one input.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"io"
	"sync"

	"github.com/AdenMGB/devtoolbox/internal/model"
	"github.com/maxbolgarin/errm"
	"github.com/panjf2000/ants/v2"
)

var constructors = map[model.HashAlgorithm]func() hash.Hash{
	model.HashMD5:    md5.New,
	model.HashSHA1:   sha1.New,
	model.HashSHA256: sha256.New,
	model.HashSHA384: sha512.New384,
	model.HashSHA512: sha512.New,
}

// Pipeline computes every digest of the fixed algorithm set over a
// shared goroutine pool
type Pipeline struct {
	pool *ants.Pool
}

// NewPipeline creates a pipeline with one pool slot per algorithm
func NewPipeline() (*Pipeline, error) {
	pool, err := ants.NewPool(len(model.HashAlgorithms))
	if err != nil {
		return nil, errm.Wrap(err, "failed to create hash pool")
	}
	return &Pipeline{pool: pool}, nil
}

// Close releases the pipeline's pool
func (p *Pipeline) Close() {
	p.pool.Release()
}

// Compute digests the same byte slice with every algorithm of the set.
// Results publish all together: if any computation cannot run, nothing
// is returned rather than a partial set.
func (p *Pipeline) Compute(data []byte) ([]model.Digest, error) {
	digests := make([]model.Digest, len(model.HashAlgorithms))

	var wg sync.WaitGroup
	for i, algorithm := range model.HashAlgorithms {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			h := constructors[algorithm]()
			h.Write(data)
			digests[i] = model.Digest{
				Algorithm: algorithm,
				Value:     hex.EncodeToString(h.Sum(nil)),
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, errm.Wrap(err, "failed to submit digest task")
		}
	}
	wg.Wait()

	return digests, nil
}

// FromReader drains the source into memory and digests the bytes.
// The whole input is materialized before any digest starts; closing the
// source stays with the caller.
func (p *Pipeline) FromReader(r io.Reader) ([]model.Digest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errm.Wrap(err, "failed to read input")
	}
	return p.Compute(data)
}
