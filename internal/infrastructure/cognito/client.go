package cognito

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/oksasatya/identity-api/internal/domain/gateway"
)

// Config carries the Cognito user-pool settings.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	UserPoolID      string
	ClientID        string
	ClientSecret    string
}

// Client implements gateway.AuthGateway on top of an AWS Cognito user pool.
type Client struct {
	api *cip.Client
	cfg Config
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{api: cip.NewFromConfig(awsCfg), cfg: cfg}, nil
}

func (c *Client) AuthenticateUser(ctx context.Context, email, password string) (gateway.TokenPair, error) {
	out, err := c.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(c.cfg.ClientID),
		AuthParameters: map[string]string{
			"USERNAME":    email,
			"PASSWORD":    password,
			"SECRET_HASH": c.secretHash(email),
		},
	})
	if err != nil {
		return gateway.TokenPair{}, err
	}

	res := out.AuthenticationResult
	if res == nil || res.AccessToken == nil || res.RefreshToken == nil {
		return gateway.TokenPair{}, fmt.Errorf("cannot authenticate user: %s", email)
	}
	return gateway.TokenPair{
		AccessToken:  *res.AccessToken,
		RefreshToken: *res.RefreshToken,
	}, nil
}

func (c *Client) RegisterUser(ctx context.Context, email, password, internalID string) (string, error) {
	out, err := c.api.SignUp(ctx, &cip.SignUpInput{
		ClientId:   aws.String(c.cfg.ClientID),
		Username:   aws.String(email),
		Password:   aws.String(password),
		SecretHash: aws.String(c.secretHash(email)),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(email)},
			{Name: aws.String("custom:internalId"), Value: aws.String(internalID)},
		},
	})
	if err != nil {
		return "", err
	}
	if out.UserSub == nil || *out.UserSub == "" {
		return "", fmt.Errorf("cannot sign up user: %s", email)
	}
	return *out.UserSub, nil
}

func (c *Client) AddUserToRole(ctx context.Context, username, roleName string) error {
	_, err := c.api.AdminAddUserToGroup(ctx, &cip.AdminAddUserToGroupInput{
		UserPoolId: aws.String(c.cfg.UserPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(roleName),
	})
	return err
}

func (c *Client) RemoveUser(ctx context.Context, externalID string) error {
	_, err := c.api.AdminDeleteUser(ctx, &cip.AdminDeleteUserInput{
		UserPoolId: aws.String(c.cfg.UserPoolID),
		Username:   aws.String(externalID),
	})
	return err
}

func (c *Client) RemoveUserFromRole(ctx context.Context, username, roleName string) error {
	_, err := c.api.AdminRemoveUserFromGroup(ctx, &cip.AdminRemoveUserFromGroupInput{
		UserPoolId: aws.String(c.cfg.UserPoolID),
		Username:   aws.String(username),
		GroupName:  aws.String(roleName),
	})
	return err
}

// secretHash is the HMAC-SHA256 of username+clientID required by Cognito for
// confidential clients.
func (c *Client) secretHash(username string) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.ClientSecret))
	mac.Write([]byte(username + c.cfg.ClientID))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

var _ gateway.AuthGateway = (*Client)(nil)
