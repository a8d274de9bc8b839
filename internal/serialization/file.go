package serialization

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/strata/internal/nn"
)

// FileName is the conventional weights file name. It is tagged with the
// element type so files written with another precision are never mixed up.
const FileName = "weights-float64.bin"

// Initialiser is an uninitialised network. *nn.Network and *nn.Input
// implement it.
type Initialiser interface {
	WithIter(elems iter.Seq[float64]) (nn.Initialised, error)
	WithSeed(seed uint64) nn.Initialised
}

// Save writes the parameters of network to path, creating parent
// directories as needed.
func Save(path string, network nn.Initialised) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	//nolint:gosec // G304: path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := Write(file, network.Parameters()); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Load reads the weights file at path into network.
//
// The file must hold exactly as many values as the network has
// parameters; otherwise a *CountError matching ErrCountMismatch is
// returned.
func Load(path string, network Initialiser) (nn.Initialised, error) {
	values, err := readFile(path)
	if err != nil {
		return nil, err
	}

	op, err := network.WithIter(slices.Values(values))
	if err != nil {
		// Too few values. Size the network to report the expected count.
		expected := network.WithSeed(0).ParameterCount()
		return nil, &CountError{Path: path, Expected: expected, Actual: len(values)}
	}
	if op.ParameterCount() != len(values) {
		return nil, &CountError{Path: path, Expected: op.ParameterCount(), Actual: len(values)}
	}
	return op, nil
}

// Summary describes the contents of a weights file.
type Summary struct {
	Count    int
	Min, Max float64
	Checksum [32]byte // SHA-256 of the file bytes
}

// Inspect summarises the weights file at path.
func Inspect(path string) (Summary, error) {
	//nolint:gosec // G304: path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read file: %w", err)
	}

	values, err := Read(bytes.NewReader(data))
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Count: len(values), Checksum: sha256.Sum256(data)}
	if len(values) > 0 {
		s.Min, s.Max = floats.Min(values), floats.Max(values)
	}
	return s, nil
}

func readFile(path string) ([]float64, error) {
	//nolint:gosec // G304: path is chosen by the caller
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	values, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}
