package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// AssetCounter reports the number of holdings
type AssetCounter interface {
	Len() int
}

// JobLister reports the registered scheduler jobs
type JobLister interface {
	Jobs() []string
}

// SystemStatusResponse is returned by GET /api/system/status
type SystemStatusResponse struct {
	Status        string   `json:"status"`
	StartedAt     string   `json:"started_at"`
	UptimeSeconds int64    `json:"uptime_seconds"`
	Uptime        string   `json:"uptime"`
	AssetCount    int      `json:"asset_count"`
	CPUPercent    float64  `json:"cpu_percent"`
	MemoryPercent float64  `json:"memory_percent"`
	Goroutines    int      `json:"goroutines"`
	GoVersion     string   `json:"go_version"`
	Jobs          []string `json:"jobs"`
}

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	startupTime time.Time
	assets      AssetCounter
	jobs        JobLister
	stats       func() (float64, float64)
	log         zerolog.Logger
}

// NewSystemHandlers creates system handlers. jobs may be nil.
func NewSystemHandlers(assets AssetCounter, jobs JobLister, log zerolog.Logger) *SystemHandlers {
	h := &SystemHandlers{
		startupTime: time.Now(),
		assets:      assets,
		jobs:        jobs,
		log:         log.With().Str("handler", "system").Logger(),
	}
	h.stats = h.getSystemStats
	return h
}

// HandleSystemStatus returns uptime, holdings count and host utilisation
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	uptime := time.Since(h.startupTime)
	cpuPercent, memPercent := h.stats()

	jobs := []string{}
	if h.jobs != nil {
		jobs = h.jobs.Jobs()
		sort.Strings(jobs)
	}

	response := SystemStatusResponse{
		Status:        "healthy",
		StartedAt:     h.startupTime.UTC().Format(time.RFC3339),
		UptimeSeconds: int64(uptime.Seconds()),
		Uptime:        uptime.Truncate(time.Second).String(),
		AssetCount:    h.assets.Len(),
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Goroutines:    runtime.NumGoroutine(),
		GoVersion:     runtime.Version(),
		Jobs:          jobs,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// getSystemStats samples CPU over 100ms and reads memory usage
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
