// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"golang.org/x/crypto/blake2b"
)

func TestHashReader_MatchesDirectSum(t *testing.T) {
	data := bytes.Repeat([]byte("photo-bytes"), 4096)

	got, err := HashReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := blake2b.Sum256(data)
	want := hex.EncodeToString(sum[:])
	if got != want {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", want, got)
	}
	if len(got) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(got))
	}
}

func TestHashReader_Deterministic(t *testing.T) {
	h1, _ := HashReader(strings.NewReader("same content"))
	h2, _ := HashReader(strings.NewReader("same content"))

	if h1 != h2 {
		t.Fatal("hash must be deterministic for the same input")
	}
}

func TestHashReader_DifferentContent(t *testing.T) {
	h1, _ := HashReader(strings.NewReader("photo A"))
	h2, _ := HashReader(strings.NewReader("photo B"))

	if h1 == h2 {
		t.Fatal("different content must produce different hashes")
	}
}

func TestHashReader_PoolReuseDoesNotLeakState(t *testing.T) {
	_, _ = HashReader(strings.NewReader("first payload that stays in the hasher"))

	got, _ := HashReader(strings.NewReader(""))
	if got != sum256Hex(nil) {
		t.Fatalf("pooled hasher was not reset: %s", got)
	}
}

func sum256Hex(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestHashReader_ReadError(t *testing.T) {
	_, err := HashReader(failingReader{})
	if err == nil {
		t.Fatal("expected error from failing reader")
	}
	if !strings.Contains(err.Error(), "disk gone") {
		t.Errorf("expected wrapped reader error, got %v", err)
	}
}

func TestHashReader_Concurrent(t *testing.T) {
	want := sum256Hex([]byte("concurrent"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := HashReader(strings.NewReader("concurrent"))
			if err != nil || got != want {
				t.Errorf("unexpected result %q, %v", got, err)
			}
		}()
	}
	wg.Wait()
}
