// Package fftconv implements FFT-based overlap-add convolution of real
// signals with a fixed kernel.
package fftconv

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("fftconv: empty input")
	ErrEmptyKernel = errors.New("fftconv: empty kernel")
)

// minBlockSize is the smallest input block processed per FFT.
const minBlockSize = 256

// OverlapAdd convolves signals with a fixed kernel block by block:
// each block is zero-padded to the FFT size, multiplied with the kernel
// spectrum and the partial results are summed into the output.
type OverlapAdd struct {
	kernelFFT []complex128
	kernelLen int
	blockSize int
	fftSize   int

	plan *algofft.Plan[complex128]
}

// NewOverlapAdd creates a convolver for kernel. blockSize <= 0 chooses a
// size from the kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	kernelLen := len(kernel)
	if blockSize <= 0 {
		blockSize = nextPowerOf2(kernelLen)
		if blockSize < minBlockSize {
			blockSize = minBlockSize
		}
	}
	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fftconv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT: make([]complex128, fftSize),
		kernelLen: kernelLen,
		blockSize: blockSize,
		fftSize:   fftSize,
		plan:      plan,
	}

	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(oa.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("fftconv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// Full returns the full linear convolution, len(input)+KernelLen()-1 samples.
func (oa *OverlapAdd) Full(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outputLen := len(input) + oa.kernelLen - 1
	output := make([]float64, outputLen)
	in := make([]complex128, oa.fftSize)
	out := make([]complex128, oa.fftSize)

	for start := 0; start < len(input); start += oa.blockSize {
		end := min(start+oa.blockSize, len(input))

		clear(in)
		for i := start; i < end; i++ {
			in[i-start] = complex(input[i], 0)
		}

		if err := oa.plan.Forward(in, in); err != nil {
			return nil, fmt.Errorf("fftconv: forward FFT failed: %w", err)
		}
		for i := range out {
			out[i] = in[i] * oa.kernelFFT[i]
		}
		if err := oa.plan.Inverse(out, out); err != nil {
			return nil, fmt.Errorf("fftconv: inverse FFT failed: %w", err)
		}

		resultLen := end - start + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			output[start+i] += real(out[i])
		}
	}

	return output, nil
}

// Same returns the central len(input) samples of the full convolution, so
// a kernel centred on index KernelLen()/2 introduces no shift.
func (oa *OverlapAdd) Same(input []float64) ([]float64, error) {
	full, err := oa.Full(input)
	if err != nil {
		return nil, err
	}
	offset := oa.kernelLen / 2
	return full[offset : offset+len(input)], nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
