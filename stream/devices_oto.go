//go:build !portaudio

package stream

// Devices reports the audio devices visible to the backend. The oto
// backend always plays through the platform default output and cannot
// enumerate; build with -tags portaudio for device listings.
func Devices() ([]DeviceInfo, error) {
	return nil, ErrDeviceEnumeration
}
