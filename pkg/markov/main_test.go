package markov

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// scriptedSource is a Source that replays fixed draws and records every bound
// it was asked for, so sampling can be tested without depending on the PRNG.
type scriptedSource struct {
	draws  []int
	bounds []int
}

func (s *scriptedSource) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.draws) == 0 {
		return 0
	}
	v := s.draws[(len(s.bounds)-1)%len(s.draws)]
	if v >= n {
		return n - 1
	}
	return v
}

// newTestModel creates a model and fails the test on error.
func newTestModel(t testing.TB, order int, seed int64, opts ...Option) *Model {
	t.Helper()
	m, err := New(order, seed, opts...)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", order, seed, err)
	}
	return m
}

// newTrainedModel is a convenience helper that also ingests text.
func newTrainedModel(t testing.TB, order int, seed int64, text string, opts ...Option) *Model {
	t.Helper()
	m := newTestModel(t, order, seed, opts...)
	m.Ingest(text)
	return m
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}
