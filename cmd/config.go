package cmd

type Config struct {
	HTTPPort        string
	BackendBaseURL  string
	RefreshSchedule string
}
