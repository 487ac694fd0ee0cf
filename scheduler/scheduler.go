package scheduler

import (
	"fmt"
	"sync"
	"time"

	"careermate/config"
	"careermate/logger"
	"careermate/repository"
)

// 验证小时和分钟是否有效
func validateHourMinute(hour, minute int) (int, int) {
	if hour < 0 || hour > 23 {
		logger.Warn("无效的小时值", "hour", hour, "default", 0)
		hour = 0
	}
	if minute < 0 || minute > 59 {
		logger.Warn("无效的分钟值", "minute", minute, "default", 0)
		minute = 0
	}
	return hour, minute
}

// 计算下一个指定时间点
func getNextTimePoint(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}

// 任务类型
type TaskType int

const (
	TaskDailyStats TaskType = iota // 每日聊天量统计
)

// 任务状态
type TaskStatus struct {
	LastRun     time.Time
	NextRun     time.Time
	IsRunning   bool
	Description string
}

// 任务调度器
type Scheduler struct {
	cfg   *config.Config
	tasks map[TaskType]*TaskStatus
	mutex sync.Mutex
}

// 创建新的调度器
func NewScheduler(cfg *config.Config) *Scheduler {
	return &Scheduler{
		cfg:   cfg,
		tasks: make(map[TaskType]*TaskStatus),
	}
}

// 启动调度器
func Start(cfg *config.Config) {
	scheduler := NewScheduler(cfg)
	scheduler.initTasks()
	go scheduler.run()

	checkInterval := cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	logger.Info("调度器已启动", "check_interval_sec", checkInterval)
}

// 初始化任务
func (s *Scheduler) initTasks() {
	now := time.Now()

	// 聊天量统计任务 - 根据debug模式决定运行频率
	if s.cfg.Debug.Enabled {
		// Debug模式：按配置的秒数间隔输出统计
		freqSeconds := s.cfg.Debug.StatsIntervalSec
		if freqSeconds <= 0 {
			freqSeconds = 1800
		}
		statsInterval := time.Duration(freqSeconds) * time.Second

		s.tasks[TaskDailyStats] = &TaskStatus{
			LastRun:     now.Add(-statsInterval),
			NextRun:     now.Add(statsInterval),
			Description: fmt.Sprintf("聊天量统计 (Debug模式: 每%d秒)", freqSeconds),
		}
		logger.Info("Debug模式已启用", "frequency_seconds", freqSeconds)
	} else {
		// 正常模式：每天在指定时间点输出前一天的统计
		hour, minute := validateHourMinute(s.cfg.Scheduler.StatsHour, s.cfg.Scheduler.StatsMin)
		nextRun := getNextTimePoint(now, hour, minute)

		s.tasks[TaskDailyStats] = &TaskStatus{
			LastRun:     nextRun.Add(-24 * time.Hour),
			NextRun:     nextRun,
			Description: fmt.Sprintf("聊天量统计 (%02d:%02d)", hour, minute),
		}
	}

	logger.Info("定时任务初始化完成", "task_count", len(s.tasks))
}

// 主循环
func (s *Scheduler) run() {
	checkInterval := s.cfg.Scheduler.CheckIntervalSec
	if checkInterval <= 0 {
		checkInterval = 60 // 默认值
	}
	ticker := time.NewTicker(time.Duration(checkInterval) * time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		s.checkTasks(now)
	}
}

// 检查任务
func (s *Scheduler) checkTasks(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for taskType, status := range s.tasks {
		if status.IsRunning {
			continue
		}
		if status.NextRun.IsZero() {
			continue
		}
		if now.After(status.NextRun) || now.Equal(status.NextRun) {
			status.IsRunning = true
			go s.runTask(taskType, now)
		}
	}
}

// 运行任务
func (s *Scheduler) runTask(taskType TaskType, now time.Time) {
	defer func() {
		s.mutex.Lock()
		defer s.mutex.Unlock()

		status := s.tasks[taskType]
		status.IsRunning = false
		status.LastRun = now

		// 更新下次运行时间
		switch taskType {
		case TaskDailyStats:
			if s.cfg.Debug.Enabled {
				freqSeconds := s.cfg.Debug.StatsIntervalSec
				if freqSeconds <= 0 {
					freqSeconds = 1800
				}
				status.NextRun = now.Add(time.Duration(freqSeconds) * time.Second)
			} else {
				hour, minute := validateHourMinute(s.cfg.Scheduler.StatsHour, s.cfg.Scheduler.StatsMin)
				status.NextRun = getNextTimePoint(now, hour, minute)
			}
		}

		logger.Info("任务执行完成", "task", status.Description, "next_run", status.NextRun.Format("2006-01-02 15:04:05"))
	}()

	switch taskType {
	case TaskDailyStats:
		s.reportDailyStats(now)
	}
}

// reportDailyStats 统计前一天的聊天量并输出日志，只读取聊天记录，不做任何修改
func (s *Scheduler) reportDailyStats(now time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	prevDayStart := dayStart.Add(-24 * time.Hour)

	count, err := repository.CountExchangesBetween(prevDayStart, dayStart)
	if err != nil {
		logger.Error("统计聊天量失败", "error", err)
		return
	}

	logger.Info("每日聊天量统计",
		"date", prevDayStart.Format("2006-01-02"),
		"exchanges", count)
}
