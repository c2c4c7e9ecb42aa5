package cleanup

import "log/slog"

type Job struct {
	Name string
	F    func() error
}

var jobs []*Job

func Register(j *Job) {
	jobs = append(jobs, j)
}

func CleanUp() {
	for _, j := range jobs {
		slog.Info("cleanup job started", slog.String("job", j.Name))
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
		} else {
			slog.Info("cleanup job finished", slog.String("job", j.Name))
		}
	}
}
