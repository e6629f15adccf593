package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-api/internal/domain/entity"
	"github.com/oksasatya/identity-api/internal/domain/gateway"
	"github.com/oksasatya/identity-api/internal/domain/repository"
	"github.com/oksasatya/identity-api/internal/domain/saga"
	"github.com/oksasatya/identity-api/pkg/helpers"
	"github.com/oksasatya/identity-api/pkg/mailer"
)

// AuthService orchestrates sign-in-or-register against the identity
// provider and the local user store.
type AuthService struct {
	Repo    repository.UserRepository
	Gateway gateway.AuthGateway
	Logger  *logrus.Logger
	Pub     *helpers.RabbitPublisher
	Indexer *UserIndexer
}

func NewAuthService(repo repository.UserRepository, gw gateway.AuthGateway, logger *logrus.Logger, pub *helpers.RabbitPublisher, indexer *UserIndexer) *AuthService {
	return &AuthService{Repo: repo, Gateway: gw, Logger: logger, Pub: pub, Indexer: indexer}
}

type SigninInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

type SigninOutput struct {
	AccessToken  string
	RefreshToken string
	IsOnboarded  bool
	IsNewUser    bool
}

// SigninOrRegister signs an existing user in, or registers a new one first.
// Registration runs as one compensated unit: the provider identity is created,
// a role is assigned, and the local row is written; if any of those steps
// fails the provider identity is deleted again and the original error comes
// back. Authentication happens after the unit resolves, so a token failure
// never rolls back a valid account.
func (s *AuthService) SigninOrRegister(ctx context.Context, in SigninInput) (SigninOutput, error) {
	existing, err := s.Repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return SigninOutput{}, err
	}

	if existing != nil {
		pair, err := s.Gateway.AuthenticateUser(ctx, in.Email, in.Password)
		if err != nil {
			return SigninOutput{}, err
		}
		return SigninOutput{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			IsOnboarded:  existing.IsOnboarded,
		}, nil
	}

	user, err := s.register(ctx, in)
	if err != nil {
		return SigninOutput{}, err
	}

	pair, err := s.Gateway.AuthenticateUser(ctx, in.Email, in.Password)
	if err != nil {
		// Account is already valid at this point; the caller can retry
		// authentication without re-registering.
		return SigninOutput{}, err
	}

	return SigninOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IsOnboarded:  user.IsOnboarded,
		IsNewUser:    true,
	}, nil
}

func (s *AuthService) register(ctx context.Context, in SigninInput) (*entity.User, error) {
	sg := saga.New(s.Logger)

	var user *entity.User
	err := sg.Run(ctx, func(ctx context.Context) error {
		user = entity.NewUser(in.Email, in.Name, in.Role)

		externalID, err := s.Gateway.RegisterUser(ctx, in.Email, in.Password, user.ID)
		if err != nil {
			return err
		}
		sg.AddCompensation(func(ctx context.Context) error {
			return s.Gateway.RemoveUser(ctx, externalID)
		})

		user.SetExternalID(externalID)

		if err := s.Gateway.AddUserToRole(ctx, in.Email, string(user.Role)); err != nil {
			return err
		}
		return s.Repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	}
	s.afterRegister(ctx, user)
	return user, nil
}

// afterRegister runs best-effort side effects that must never fail the flow:
// search indexing and the welcome email job.
func (s *AuthService) afterRegister(ctx context.Context, u *entity.User) {
	if s.Indexer != nil {
		s.Indexer.Index(ctx, u)
	}
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email publish failed")
	}
}
