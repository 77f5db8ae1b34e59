package tactile

import (
	"runtime"
	"strings"
)

// GPUTier is a coarse bucket for GPU strength.
type GPUTier uint8

const (
	GPULow    GPUTier = iota // known low-end or software renderers
	GPUMedium                // reported but unrecognized renderers
	GPUHigh                  // known high-end renderers, or no signal at all
)

// ConnectionTier is a coarse bucket for network strength.
type ConnectionTier uint8

const (
	ConnectionSlow     ConnectionTier = iota // 2g-class, or save-data requested
	ConnectionModerate                       // 3g-class
	ConnectionFast                           // 4g-class or no signal
)

// Hints carries the raw platform signals available at probe time. Any
// zero-valued field means the platform did not expose that signal; the probe
// substitutes a documented fallback rather than failing.
type Hints struct {
	Cores          int    // logical CPU count; 0 = read from the runtime
	MemoryGB       int    // physical memory in GB; 0 = estimate from cores
	GPURenderer    string // renderer identification string; "" = no signal
	ConnectionType string // effective type such as "4g", "3g", "2g", "slow-2g"
	SaveData       bool   // user requested reduced data usage
	CoarsePointer  bool   // primary pointer is imprecise (finger)
	ViewportWidth  int    // current viewport width in pixels
}

// CapabilityProfile is the probed tier bundle. It is read-mostly: probe once
// at startup, and re-derive the viewport-dependent TouchDevice field on
// resize with Rescan.
type CapabilityProfile struct {
	Cores       int
	MemoryGB    int
	GPU         GPUTier
	Connection  ConnectionTier
	SaveData    bool
	TouchDevice bool
}

// Renderer identifier substrings for tier matching, lowercased. Anything
// reported but matching neither list lands in GPUMedium.
var (
	gpuLowRenderers = []string{
		"swiftshader", "llvmpipe", "softpipe", "software",
		"mali-4", "mali-t", "adreno 3", "adreno 4", "powervr",
		"intel hd graphics 4", "gma",
	}
	gpuHighRenderers = []string{
		"rtx", "geforce gtx", "radeon rx", "radeon pro",
		"apple m", "adreno 7", "mali-g7",
	}
)

// Probe derives a capability profile from the given hints. Missing signals
// default toward the high end: an unknown device is assumed capable, and
// consumers downgrade later from live frame timing instead.
func Probe(hints Hints) CapabilityProfile {
	cores := hints.Cores
	if cores <= 0 {
		cores = runtime.NumCPU()
	}

	return CapabilityProfile{
		Cores:       cores,
		MemoryGB:    memoryTier(hints.MemoryGB, cores),
		GPU:         gpuTier(hints.GPURenderer),
		Connection:  connectionTier(hints.ConnectionType, hints.SaveData),
		SaveData:    hints.SaveData,
		TouchDevice: IsTouchDevice(hints.CoarsePointer, hints.ViewportWidth),
	}
}

// Rescan re-derives the viewport-dependent fields after a resize, leaving
// the hardware fields untouched.
func (p CapabilityProfile) Rescan(coarsePointer bool, viewportWidth int) CapabilityProfile {
	p.TouchDevice = IsTouchDevice(coarsePointer, viewportWidth)
	return p
}

// IsTouchDevice classifies the device as touch-first: an imprecise primary
// pointer, or a viewport narrower than 1024px.
func IsTouchDevice(coarsePointer bool, viewportWidth int) bool {
	return coarsePointer || viewportWidth < 1024
}

// memoryTier returns the reported memory size, or estimates it from the
// core count when unreported: <=2 cores -> 2GB, <=4 -> 4GB, <=8 -> 8GB,
// otherwise 16GB.
func memoryTier(reportedGB, cores int) int {
	if reportedGB > 0 {
		return reportedGB
	}
	switch {
	case cores <= 2:
		return 2
	case cores <= 4:
		return 4
	case cores <= 8:
		return 8
	default:
		return 16
	}
}

func gpuTier(renderer string) GPUTier {
	if renderer == "" {
		return GPUHigh // no signal, assume capable
	}
	r := strings.ToLower(renderer)
	for _, sub := range gpuLowRenderers {
		if strings.Contains(r, sub) {
			return GPULow
		}
	}
	for _, sub := range gpuHighRenderers {
		if strings.Contains(r, sub) {
			return GPUHigh
		}
	}
	return GPUMedium
}

// connectionTier maps an effective connection type to a tier. SaveData
// forces the lowest tier regardless of the reported type; an unreported
// type counts as fast.
func connectionTier(effectiveType string, saveData bool) ConnectionTier {
	if saveData {
		return ConnectionSlow
	}
	switch strings.ToLower(effectiveType) {
	case "slow-2g", "2g":
		return ConnectionSlow
	case "3g":
		return ConnectionModerate
	default:
		return ConnectionFast
	}
}
