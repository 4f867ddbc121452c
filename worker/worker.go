package worker

import (
	"sync/atomic"

	"github.com/robfig/cron/v3"
)

// IJob cron driven job
type IJob interface {
	Start() error
	Run()
	Stop() error
}

type OnWork func() error

// BaseJob runs OnWork on every cron tick, ticks overlapping a running
// OnWork are dropped
type BaseJob struct {
	Cron    *cron.Cron
	OnWork  OnWork
	running atomic.Bool
}

func (job *BaseJob) Start() error {
	job.Cron.Start()
	return nil
}

func (job *BaseJob) Stop() error {
	<-job.Cron.Stop().Done()
	return nil
}

func (job *BaseJob) Run() {
	if !job.running.CompareAndSwap(false, true) {
		return
	}

	defer job.running.Store(false)

	_ = job.OnWork()
}
