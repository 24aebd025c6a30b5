package offerservice

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const toMeg uint64 = 1048576

// PipelineErrors collects stage failures without stopping the run; a static
// report with missing history beats no report at all
type PipelineErrors struct {
	Errors       []error
	mux          *sync.Mutex
	maxMemoryUse *uint64
	mem          runtime.MemStats
}

func NewPE(mux *sync.Mutex) PipelineErrors {
	return PipelineErrors{
		mux:          mux,
		maxMemoryUse: new(uint64),
	}
}

func (pe *PipelineErrors) GetMaxMemory() uint64 {
	return *pe.maxMemoryUse
}

// Log appends the error to the pipeline log, tagged with its stage
func (pe *PipelineErrors) Log(e error, stageName string) {
	defer memLog(stageName, pe.mem, pe.maxMemoryUse)

	if e == nil {
		return
	}

	pe.mux.Lock()
	defer pe.mux.Unlock()

	err := fmt.Errorf("%s - %w", stageName, e)
	pe.Errors = append(pe.Errors, err)
	log.Warnf("%v", err)
}

func (pe PipelineErrors) Error() string {
	pe.mux.Lock()
	defer pe.mux.Unlock()

	var output string
	for _, logError := range pe.Errors {
		output += logError.Error() + "\n"
	}

	return output
}

func memLog(message string, mem runtime.MemStats, maxMemory *uint64) {
	runtime.ReadMemStats(&mem)

	log.WithFields(log.Fields{
		"Mem Allocated": mem.Alloc / toMeg,
		"HeapAlloc":     mem.HeapAlloc / toMeg,
		"System Memory": mem.Sys / toMeg,
		"Go Routines":   runtime.NumGoroutine(),
		"Num GC":        mem.NumGC,
	}).Debug(message)

	if mem.Alloc/toMeg > *maxMemory {
		*maxMemory = mem.Alloc / toMeg
	}
}

func track(start time.Time, name string) {
	elapsed := time.Since(start)

	log.WithField("time elapsed", elapsed).Info(name)
}
