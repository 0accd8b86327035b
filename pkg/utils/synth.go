package utils

import (
	"encoding/binary"
	"math"
)

// SampleRate 音频采样率，与 AudioManager 创建的 audio.Context 一致
const SampleRate = 48000

// Tone 合成音效中的一个音
type Tone struct {
	Freq    float64 // 频率（Hz）
	Start   float64 // 起始时间（秒）
	Length  float64 // 持续时间（秒）
	Attack  float64 // 起音时间（秒）
	Release float64 // 释音时间（秒）
	Gain    float64 // 增益 0~1
}

// SynthesizeTones 将多个正弦音混合为单声道浮点缓冲
// 结果已按峰值归一化到 [-1, 1]
func SynthesizeTones(tones []Tone) []float64 {
	total := 0.0
	for _, tn := range tones {
		total = math.Max(total, tn.Start+tn.Length)
	}
	buf := make([]float64, int(total*SampleRate))

	for _, tn := range tones {
		offset := int(tn.Start * SampleRate)
		samples := int(tn.Length * SampleRate)
		attack := int(tn.Attack * SampleRate)
		release := int(tn.Release * SampleRate)
		releaseStart := samples - release
		if releaseStart < attack {
			releaseStart = attack
		}

		for i := 0; i < samples && offset+i < len(buf); i++ {
			vol := 1.0
			if i < attack && attack > 0 {
				vol = float64(i) / float64(attack)
			} else if i >= releaseStart && release > 0 {
				vol = float64(samples-i) / float64(release)
			}
			phase := 2 * math.Pi * tn.Freq * float64(i) / SampleRate
			buf[offset+i] += math.Sin(phase) * vol * tn.Gain
		}
	}

	peak := 0.0
	for _, v := range buf {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

// EncodePCM16Stereo 将单声道浮点缓冲编码为 16 位小端立体声 PCM
// 这是 audio.NewPlayerFromBytes 接受的格式
func EncodePCM16Stereo(buf []float64, volume float64) []byte {
	out := make([]byte, len(buf)*4)
	for i, v := range buf {
		s := int16(Clamp(v*volume, -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

// ChimeTones 彩纸喷发时的上行琶音（C6-E6-G6-C7）
func ChimeTones() []Tone {
	notes := []float64{1046.5, 1318.5, 1568.0, 2093.0}
	tones := make([]Tone, 0, len(notes))
	for i, f := range notes {
		tones = append(tones, Tone{
			Freq:    f,
			Start:   float64(i) * 0.07,
			Length:  0.45,
			Attack:  0.005,
			Release: 0.35,
			Gain:    0.35,
		})
	}
	return tones
}

// PopTones 卡片被移开时的短促提示音
func PopTones() []Tone {
	return []Tone{
		{Freq: 660, Length: 0.08, Attack: 0.003, Release: 0.06, Gain: 0.5},
		{Freq: 990, Start: 0.02, Length: 0.08, Attack: 0.003, Release: 0.06, Gain: 0.3},
	}
}
