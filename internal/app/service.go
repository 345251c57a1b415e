package app

import (
	"maven-depman/internal/adapters"
	"maven-depman/internal/ports"
	"maven-depman/internal/types"
)

type Service struct {
	SpecLoader   ports.ProjectSpecPort
	PomFiles     ports.PomFilePort
	Declarations ports.DeclarationsPort

	// Repository overrides the spec's repository configuration when set;
	// used by tests to inject a fake.
	Repository ports.PomRepositoryPort
}

func NewService() Service {
	return Service{
		SpecLoader:   adapters.NewSpecFileAdapter(),
		PomFiles:     adapters.NewPomFileAdapter(),
		Declarations: adapters.NewDeclarationsPomAdapter(),
	}
}

func (s Service) repository(spec types.Spec) ports.PomRepositoryPort {
	if s.Repository != nil {
		return s.Repository
	}
	switch spec.Repository.Kind {
	case types.RepositoryKindHTTP:
		return adapters.NewRepoHTTPAdapter(
			spec.Repository.URL,
			spec.Repository.TimeoutSec,
			spec.Repository.Retries,
			spec.Repository.RetryDelayMs,
		)
	default:
		// Overrides-only specs carry no repository; the resolver is never
		// consulted for them, validation enforces one when imports exist.
		return adapters.NewRepoFileAdapter(spec.Repository.Path)
	}
}
