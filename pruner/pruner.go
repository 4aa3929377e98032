package pruner

import (
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/fleetscaler/fleetscaler/db"
)

// MetricDBPruner trims fleet metrics older than the cutoff on an interval.
type MetricDBPruner struct {
	logger     lager.Logger
	metricDB   db.MetricDB
	interval   time.Duration
	cutoffDays int
	cclock     clock.Clock
	doneChan   chan bool
}

func NewMetricDBPruner(logger lager.Logger, metricDB db.MetricDB, interval time.Duration, cutoffDays int, cclock clock.Clock) *MetricDBPruner {
	return &MetricDBPruner{
		logger:     logger.Session("metric-db-pruner"),
		metricDB:   metricDB,
		interval:   interval,
		cutoffDays: cutoffDays,
		cclock:     cclock,
		doneChan:   make(chan bool),
	}
}

func (p *MetricDBPruner) Start() {
	go p.startPrune()
	p.logger.Info("started", lager.Data{"interval": p.interval, "cutoffDays": p.cutoffDays})
}

func (p *MetricDBPruner) Stop() {
	close(p.doneChan)
	p.logger.Info("stopped")
}

func (p *MetricDBPruner) startPrune() {
	ticker := p.cclock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.PruneOldMetrics()
		select {
		case <-p.doneChan:
			return
		case <-ticker.C():
		}
	}
}

func (p *MetricDBPruner) PruneOldMetrics() {
	before := p.cclock.Now().AddDate(0, 0, -p.cutoffDays).UnixNano()
	if err := p.metricDB.PruneMetrics(before); err != nil {
		p.logger.Error("prune-metrics", err, lager.Data{"before": before})
	}
}

// HistoryDBPruner trims scaling histories older than the cutoff.
type HistoryDBPruner struct {
	logger     lager.Logger
	historyDB  db.ScalingHistoryDB
	interval   time.Duration
	cutoffDays int
	cclock     clock.Clock
	doneChan   chan bool
}

func NewHistoryDBPruner(logger lager.Logger, historyDB db.ScalingHistoryDB, interval time.Duration, cutoffDays int, cclock clock.Clock) *HistoryDBPruner {
	return &HistoryDBPruner{
		logger:     logger.Session("history-db-pruner"),
		historyDB:  historyDB,
		interval:   interval,
		cutoffDays: cutoffDays,
		cclock:     cclock,
		doneChan:   make(chan bool),
	}
}

func (p *HistoryDBPruner) Start() {
	go p.startPrune()
	p.logger.Info("started", lager.Data{"interval": p.interval, "cutoffDays": p.cutoffDays})
}

func (p *HistoryDBPruner) Stop() {
	close(p.doneChan)
	p.logger.Info("stopped")
}

func (p *HistoryDBPruner) startPrune() {
	ticker := p.cclock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.PruneOldHistories()
		select {
		case <-p.doneChan:
			return
		case <-ticker.C():
		}
	}
}

func (p *HistoryDBPruner) PruneOldHistories() {
	before := p.cclock.Now().AddDate(0, 0, -p.cutoffDays).UnixNano()
	if err := p.historyDB.PruneScalingHistories(before); err != nil {
		p.logger.Error("prune-scaling-histories", err, lager.Data{"before": before})
	}
}
