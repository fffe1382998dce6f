package observability

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessStats снимает показатели процесса песочницы
type ProcessStats struct {
	StartTime time.Time
}

// NewProcessStats создаёт счётчик с текущим временем старта
func NewProcessStats() *ProcessStats {
	return &ProcessStats{StartTime: time.Now()}
}

// Uptime возвращает время работы с момента создания
func (ps *ProcessStats) Uptime() time.Duration {
	return time.Since(ps.StartTime)
}

// HeapMB возвращает размер занятой кучи в MB
func (ps *ProcessStats) HeapMB() float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc) / 1024 / 1024
}

// CPUPercent возвращает использование CPU процессом в процентах
func (ps *ProcessStats) CPUPercent() (float64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("процесс %d: %w", os.Getpid(), err)
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		return 0, fmt.Errorf("использование CPU: %w", err)
	}
	return cpuPercent, nil
}

// RSSMB возвращает резидентную память процесса в MB
func (ps *ProcessStats) RSSMB() (float64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, fmt.Errorf("процесс %d: %w", os.Getpid(), err)
	}

	mem, err := proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("память процесса: %w", err)
	}
	return float64(mem.RSS) / 1024 / 1024, nil
}
