//go:build portaudio

package stream

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// Devices lists the audio devices known to the portaudio host API.
// portaudio must already be initialized (NewDriver does that).
func Devices() ([]DeviceInfo, error) {
	devs, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("listing portaudio devices: %w", err)
	}

	defaultOut, err := portaudio.DefaultOutputDevice()
	if err != nil {
		// No default output is not fatal for a listing
		defaultOut = nil
	}

	infos := make([]DeviceInfo, 0, len(devs))
	for _, dev := range devs {
		infos = append(infos, DeviceInfo{
			Name:              dev.Name,
			MaxInputChannels:  dev.MaxInputChannels,
			MaxOutputChannels: dev.MaxOutputChannels,
			DefaultSampleRate: dev.DefaultSampleRate,
			IsDefaultOutput:   defaultOut != nil && dev == defaultOut,
		})
	}

	return infos, nil
}
