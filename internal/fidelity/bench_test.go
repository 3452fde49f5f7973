package fidelity

import "testing"

func BenchmarkSSIM_256(b *testing.B) {
	a := gradient(256, 256)
	c := withNoise(a, 8)
	opts := DefaultSSIMOptions()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = SSIM(a, c, opts)
	}
}

func BenchmarkPSNR_1024(b *testing.B) {
	a := gradient(1024, 1024)
	c := withNoise(a, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PSNR(a, c)
	}
}
