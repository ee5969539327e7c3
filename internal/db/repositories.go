package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Periods     *PeriodRepository
	SymptomLogs *SymptomLogRepository
	MoodLogs    *MoodLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Periods:     NewPeriodRepository(database),
		SymptomLogs: NewSymptomLogRepository(database),
		MoodLogs:    NewMoodLogRepository(database),
	}
}
