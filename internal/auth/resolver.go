package auth

import (
	"context"
	"time"

	"github.com/pydantic/logfire-setup/internal/install"
	"github.com/pydantic/logfire-setup/internal/logger"
)

// State is the resolver's terminal state for one run.
type State string

const (
	// StateUnauthenticated means no usable credential was found or obtained.
	StateUnauthenticated State = "unauthenticated"
	// StateAuthenticatedNoProject means a credential exists but no project
	// could be bound.
	StateAuthenticatedNoProject State = "authenticated_no_project"
	// StateProjectBound means a credential exists and a project is selected.
	StateProjectBound State = "project_bound"
)

// Session is the resolved credential plus optional project binding. It is
// created here, read downstream, and never persisted by this tool.
type Session struct {
	State       State
	Token       string
	BaseURL     string
	TokenSource string // credential store, environment, .env file
	ProjectPath string // org/name label, set when a project was picked
	ProjectURL  string // set only in StateProjectBound
}

// Authenticated reports whether any usable credential was found.
func (s Session) Authenticated() bool {
	return s.State != StateUnauthenticated
}

// Authenticator is the external auth collaborator, e.g. the `logfire auth`
// browser flow.
type Authenticator interface {
	Login(ctx context.Context) error
}

// ProjectPicker presents remote projects for selection. Returning nil means
// the user skipped; that is a valid outcome, not an error.
type ProjectPicker interface {
	PickProject(projects []Project) (*Project, error)
}

// Resolver finds a credential and binds a project, preferring local file
// checks over network calls: the projects API is only reached when no valid
// local binding exists.
type Resolver struct {
	StorePath  string
	ProjectDir string
	Client     ProjectsClient
	Picker     ProjectPicker
	Auth       Authenticator
	Commander  install.Commander
	Logger     logger.Logger
	Now        func() time.Time
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Resolve runs the credential/project state machine. It never returns an
// error: every failure degrades to a terminal state the rest of the flow can
// live with.
func (r *Resolver) Resolve(ctx context.Context, skipAuth bool) Session {
	session, ok := r.localCredential()
	if !ok {
		if skipAuth {
			return Session{State: StateUnauthenticated}
		}
		session, ok = r.externalAuth(ctx)
		if !ok {
			return Session{State: StateUnauthenticated}
		}
	}

	return r.bindProject(ctx, session)
}

// localCredential checks the credential store, then the environment and the
// project's .env file.
func (r *Resolver) localCredential() (Session, bool) {
	if token, baseURL, ok := ReadUserToken(r.StorePath, r.now()); ok {
		return Session{
			State:       StateAuthenticatedNoProject,
			Token:       token,
			BaseURL:     baseURL,
			TokenSource: "credential store",
		}, true
	}
	if token, source, ok := EnvToken(r.ProjectDir); ok {
		return Session{
			State:       StateAuthenticatedNoProject,
			Token:       token,
			TokenSource: source,
		}, true
	}
	return Session{}, false
}

// externalAuth invokes the auth collaborator and re-reads the store.
func (r *Resolver) externalAuth(ctx context.Context) (Session, bool) {
	if r.Auth == nil {
		return Session{}, false
	}
	if err := r.Auth.Login(ctx); err != nil {
		r.Logger.Logf("Authentication failed: %v\n", err)
		return Session{}, false
	}
	if token, baseURL, ok := ReadUserToken(r.StorePath, r.now()); ok {
		return Session{
			State:       StateAuthenticatedNoProject,
			Token:       token,
			BaseURL:     baseURL,
			TokenSource: "credential store",
		}, true
	}
	return Session{}, false
}

// bindProject prefers an existing local binding; only without one does it
// list projects over the network and prompt.
func (r *Resolver) bindProject(ctx context.Context, session Session) Session {
	if url, ok := ReadProjectCredentials(r.ProjectDir); ok {
		session.State = StateProjectBound
		session.ProjectURL = url
		session.ProjectPath = url
		return session
	}

	// Tokens from the environment carry no API base URL, so listing is off
	// the table.
	if session.BaseURL == "" || r.Client == nil {
		return session
	}

	projects, err := r.Client.ListProjects(ctx, session.BaseURL, session.Token)
	if err != nil {
		r.Logger.Logf("Could not fetch projects: %v\n", err)
		return session
	}
	if len(projects) == 0 {
		r.Logger.Log("No projects found. You can create one in the Logfire console.")
		return session
	}

	picked, err := r.Picker.PickProject(projects)
	if err != nil {
		r.Logger.Logf("Project selection cancelled: %v\n", err)
		return session
	}
	if picked == nil {
		return session
	}

	session.ProjectPath = picked.Path()
	session.State = StateProjectBound
	session.ProjectURL = picked.ProjectURL

	// `logfire projects use` writes .logfire/logfire_credentials.json; the
	// credentials file is the authoritative source for the project URL.
	if r.Commander != nil {
		if _, err := r.Commander.Run(ctx, "logfire", []string{"projects", "use", picked.ProjectName}, r.ProjectDir); err != nil {
			r.Logger.Logf("Failed to set project %s: %v\n", picked.ProjectName, err)
		} else if url, ok := ReadProjectCredentials(r.ProjectDir); ok {
			session.ProjectURL = url
		}
	}

	if session.ProjectURL == "" {
		session.State = StateAuthenticatedNoProject
	}
	return session
}

// CLIAuthenticator runs the `logfire auth` login flow through a commander.
type CLIAuthenticator struct {
	Commander  install.Commander
	ProjectDir string
}

func (a *CLIAuthenticator) Login(ctx context.Context) error {
	_, err := a.Commander.Run(ctx, "logfire", []string{"auth"}, a.ProjectDir)
	return err
}
