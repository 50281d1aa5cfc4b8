package commandclass

import (
	"fmt"

	"github.com/zwave-protocol/zwave-go/pkg/wire"
)

// FirmwareVersion is the version of one firmware target.
type FirmwareVersion struct {
	Version    uint8
	SubVersion uint8
}

// String returns "major.minor".
func (f FirmwareVersion) String() string {
	return fmt.Sprintf("%d.%02d", f.Version, f.SubVersion)
}

// VersionReport describes a node's library, protocol and firmware versions.
// HardwareVersion and FirmwareTargets (targets 1..n) are version 2 fields;
// a version 1 report leaves HardwareVersion nil.
type VersionReport struct {
	LibraryType     uint8
	Protocol        FirmwareVersion
	Firmware        FirmwareVersion
	HardwareVersion *uint8
	FirmwareTargets []FirmwareVersion
}

// VersionCommandClassGet asks which version of a command class a node supports.
type VersionCommandClassGet struct {
	Class wire.ClassID
}

// VersionCommandClassReport is the supported version of a command class.
// Version 0 means the class is not supported.
type VersionCommandClassReport struct {
	Class   wire.ClassID
	Version uint8
}

// Supported reports whether the node implements the class.
func (r VersionCommandClassReport) Supported() bool {
	return r.Version != 0
}

func readFirmwareVersion(r *wire.Reader, field string) (FirmwareVersion, error) {
	b, err := r.Bytes(2, field)
	if err != nil {
		return FirmwareVersion{}, err
	}
	return FirmwareVersion{Version: b[0], SubVersion: b[1]}, nil
}

func decodeVersionReport(r *wire.Reader) (VersionReport, error) {
	var rep VersionReport
	var err error
	if rep.LibraryType, err = r.Uint8("library type"); err != nil {
		return VersionReport{}, err
	}
	if rep.Protocol, err = readFirmwareVersion(r, "protocol version"); err != nil {
		return VersionReport{}, err
	}
	if rep.Firmware, err = readFirmwareVersion(r, "firmware 0 version"); err != nil {
		return VersionReport{}, err
	}
	if r.Remaining() == 0 {
		return rep, nil
	}

	hw, err := r.Uint8("hardware version")
	if err != nil {
		return VersionReport{}, err
	}
	rep.HardwareVersion = &hw
	n, err := r.Uint8("number of firmware targets")
	if err != nil {
		return VersionReport{}, err
	}
	for i := 0; i < int(n); i++ {
		fv, err := readFirmwareVersion(r, fmt.Sprintf("firmware %d version", i+1))
		if err != nil {
			return VersionReport{}, err
		}
		rep.FirmwareTargets = append(rep.FirmwareTargets, fv)
	}
	return rep, nil
}

func encodeVersionReport(w *wire.Writer, v VersionReport) error {
	if v.HardwareVersion == nil && len(v.FirmwareTargets) > 0 {
		return fmt.Errorf("%w: firmware targets require a hardware version", wire.ErrInvalidValue)
	}
	if len(v.FirmwareTargets) > 0xFF {
		return fmt.Errorf("%w: %d firmware targets", wire.ErrInvalidValue, len(v.FirmwareTargets))
	}
	w.Uint8(v.LibraryType).
		Uint8(v.Protocol.Version).Uint8(v.Protocol.SubVersion).
		Uint8(v.Firmware.Version).Uint8(v.Firmware.SubVersion)
	if v.HardwareVersion == nil {
		return nil
	}
	w.Uint8(*v.HardwareVersion).Uint8(uint8(len(v.FirmwareTargets)))
	for _, fv := range v.FirmwareTargets {
		w.Uint8(fv.Version).Uint8(fv.SubVersion)
	}
	return nil
}

func encodeVersionCommandClassGet(w *wire.Writer, v VersionCommandClassGet) error {
	w.Uint8(uint8(v.Class))
	return nil
}

func decodeVersionCommandClassReport(r *wire.Reader) (VersionCommandClassReport, error) {
	class, err := r.Uint8("requested command class")
	if err != nil {
		return VersionCommandClassReport{}, err
	}
	ver, err := r.Uint8("command class version")
	if err != nil {
		return VersionCommandClassReport{}, err
	}
	return VersionCommandClassReport{Class: wire.ClassID(class), Version: ver}, nil
}

func encodeVersionCommandClassReport(w *wire.Writer, v VersionCommandClassReport) error {
	w.Uint8(uint8(v.Class)).Uint8(v.Version)
	return nil
}
