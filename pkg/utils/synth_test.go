package utils

import (
	"encoding/binary"
	"math"
	"testing"
)

// TestSynthesizeTones_Length 测试缓冲长度覆盖最后一个音
func TestSynthesizeTones_Length(t *testing.T) {
	buf := SynthesizeTones(ChimeTones())
	// 最后一个音从 0.21 秒开始，持续 0.45 秒
	want := int(0.66 * SampleRate)
	if math.Abs(float64(len(buf)-want)) > 2 {
		t.Errorf("Buffer length: got %d, want ~%d", len(buf), want)
	}
}

// TestSynthesizeTones_Normalized 测试混音后不超过满幅
func TestSynthesizeTones_Normalized(t *testing.T) {
	for name, tones := range map[string][]Tone{"chime": ChimeTones(), "pop": PopTones()} {
		t.Run(name, func(t *testing.T) {
			for i, v := range SynthesizeTones(tones) {
				if math.Abs(v) > 1.0000001 {
					t.Fatalf("Sample %d = %v exceeds [-1, 1]", i, v)
				}
			}
		})
	}
}

// TestSynthesizeTones_Envelope 测试起音从静音开始
func TestSynthesizeTones_Envelope(t *testing.T) {
	buf := SynthesizeTones([]Tone{{Freq: 440, Length: 0.1, Attack: 0.01, Release: 0.01, Gain: 1}})
	if buf[0] != 0 {
		t.Errorf("First sample should be silent, got %v", buf[0])
	}
}

// TestEncodePCM16Stereo 测试 PCM 编码格式
func TestEncodePCM16Stereo(t *testing.T) {
	out := EncodePCM16Stereo([]float64{0, 1, -1, 2}, 1)
	if len(out) != 16 {
		t.Fatalf("Encoded length: got %d, want 16", len(out))
	}

	sample := func(i int) (int16, int16) {
		l := int16(binary.LittleEndian.Uint16(out[i*4:]))
		r := int16(binary.LittleEndian.Uint16(out[i*4+2:]))
		return l, r
	}

	if l, r := sample(1); l != math.MaxInt16 || r != math.MaxInt16 {
		t.Errorf("Full scale sample = (%d, %d)", l, r)
	}
	if l, _ := sample(2); l != -math.MaxInt16 {
		t.Errorf("Negative full scale = %d", l)
	}
	// 超出范围的值被限幅
	if l, _ := sample(3); l != math.MaxInt16 {
		t.Errorf("Clipped sample = %d", l)
	}

	// 音量缩放
	half := EncodePCM16Stereo([]float64{1}, 0.5)
	if v := int16(binary.LittleEndian.Uint16(half)); v != math.MaxInt16/2 {
		t.Errorf("Half volume sample = %d, want %d", v, math.MaxInt16/2)
	}
}
