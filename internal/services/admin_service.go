package services

import "vinylstore/internal/logging"

// AdminService exposes the raw log files to the admin API.
type AdminService struct {
	logs *logging.Logs
}

// NewAdminService creates a new AdminService.
func NewAdminService(logs *logging.Logs) *AdminService {
	return &AdminService{logs: logs}
}

// ReadSystemLogs returns the raw system log contents.
func (s *AdminService) ReadSystemLogs() (string, error) {
	return s.logs.ReadSystem()
}

// ReadControllerLogs returns the raw controller log contents.
func (s *AdminService) ReadControllerLogs() (string, error) {
	return s.logs.ReadController()
}

// ClearSystemLogs truncates the system log file.
func (s *AdminService) ClearSystemLogs() error {
	return s.logs.ClearSystem()
}

// ClearControllerLogs truncates the controller log file.
func (s *AdminService) ClearControllerLogs() error {
	return s.logs.ClearController()
}
