// Package cognito implements identity.Service on top of an Amazon Cognito user
// pool app client.
package cognito

import (
	"context"
	"time"

	"github.com/arya-analytics/enroll/pkg/identity"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// DefaultRegion is used when neither the caller nor the AWS default provider
// chain supplies a region.
const DefaultRegion = "us-east-1"

type Config struct {
	// Region is the AWS region of the user pool. If empty, the region is resolved
	// from the AWS default provider chain (AWS_REGION, shared config profile),
	// and then falls back to DefaultRegion.
	Region string
	// ClientSecret is the app client's secret. When set, a SECRET_HASH is attached
	// to every request. Leave empty for public clients.
	ClientSecret string
	// Endpoint overrides the Cognito endpoint. Useful for local emulators.
	Endpoint string
	// Credentials overrides the AWS default credential chain. Sign up,
	// confirmation, and password auth don't need IAM credentials, so this is
	// mostly useful in tests.
	Credentials aws.CredentialsProvider
	// Logger is the logger used by the provider.
	Logger *zap.Logger
}

// Provider is an identity.Service backed by Cognito. Retries are disabled:
// every operation results in exactly one round trip.
type Provider struct {
	Config
	api *cip.Client
}

var _ identity.Service = (*Provider)(nil)

// Open resolves the AWS configuration and builds a Provider.
func Open(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	opts := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Credentials != nil {
		opts = append(opts, config.WithCredentialsProvider(cfg.Credentials))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[cognito] - failed to load aws config")
	}
	if awsCfg.Region == "" {
		awsCfg.Region = DefaultRegion
	}
	cfg.Region = awsCfg.Region
	api := cip.NewFromConfig(awsCfg, func(o *cip.Options) {
		o.Retryer = aws.NopRetryer{}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	cfg.Logger.Debug("opened cognito provider",
		zap.String("region", cfg.Region),
		zap.Bool("secretHash", cfg.ClientSecret != ""),
		zap.String("endpoint", cfg.Endpoint),
	)
	return &Provider{Config: cfg, api: api}, nil
}

// SignUp implements identity.Service.
func (p *Provider) SignUp(
	ctx context.Context,
	req identity.SignUpRequest,
) (identity.SignUpResult, error) {
	p.Logger.Debug("sign up",
		zap.String("clientID", req.ClientID),
		zap.String("username", req.Credentials.Username),
		zap.Stringer("password", req.Credentials.Password),
	)
	out, err := p.api.SignUp(ctx, &cip.SignUpInput{
		ClientId:       aws.String(req.ClientID),
		Username:       aws.String(req.Credentials.Username),
		Password:       aws.String(req.Credentials.Password.Reveal()),
		SecretHash:     p.secretHash(req.Credentials.Username, req.ClientID),
		UserAttributes: attributes(req.Attributes),
	})
	if err != nil {
		return identity.SignUpResult{}, translate("sign up", err)
	}
	res := identity.SignUpResult{
		UserSub:   aws.ToString(out.UserSub),
		Confirmed: out.UserConfirmed,
	}
	if d := out.CodeDeliveryDetails; d != nil {
		res.Delivery = identity.Delivery{
			Destination: aws.ToString(d.Destination),
			Medium:      string(d.DeliveryMedium),
			Attribute:   aws.ToString(d.AttributeName),
		}
	}
	return res, nil
}

// ConfirmSignUp implements identity.Service.
func (p *Provider) ConfirmSignUp(ctx context.Context, req identity.ConfirmRequest) error {
	p.Logger.Debug("confirm sign up",
		zap.String("clientID", req.ClientID),
		zap.String("username", req.Username),
	)
	_, err := p.api.ConfirmSignUp(ctx, &cip.ConfirmSignUpInput{
		ClientId:         aws.String(req.ClientID),
		Username:         aws.String(req.Username),
		ConfirmationCode: aws.String(req.Code),
		SecretHash:       p.secretHash(req.Username, req.ClientID),
	})
	return translate("confirm sign up", err)
}

// secretHashKey is the auth parameter carrying the secret hash.
const secretHashKey = "SECRET_HASH"

// Authenticate implements identity.Service using the USER_PASSWORD_AUTH flow.
// The app client must have that flow enabled.
func (p *Provider) Authenticate(
	ctx context.Context,
	req identity.AuthRequest,
) (identity.Tokens, error) {
	if err := req.Credentials.Validate(); err != nil {
		return identity.Tokens{}, err
	}
	p.Logger.Debug("initiate auth",
		zap.String("clientID", req.ClientID),
		zap.String("username", req.Credentials.Username),
		zap.Stringer("password", req.Credentials.Password),
	)
	params := req.Credentials.AuthParameters()
	if h := p.secretHash(req.Credentials.Username, req.ClientID); h != nil {
		params[secretHashKey] = *h
	}
	out, err := p.api.InitiateAuth(ctx, &cip.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(req.ClientID),
		AuthParameters: params,
	})
	if err != nil {
		return identity.Tokens{}, translate("initiate auth", err)
	}
	r := out.AuthenticationResult
	if r == nil {
		if out.ChallengeName != "" {
			return identity.Tokens{}, errors.Wrapf(
				identity.ChallengeRequired,
				"[cognito] - %s",
				out.ChallengeName,
			)
		}
		return identity.Tokens{}, errors.Wrap(
			identity.NotAuthorized,
			"[cognito] - no authentication result returned",
		)
	}
	return identity.Tokens{
		AccessToken:  aws.ToString(r.AccessToken),
		IDToken:      aws.ToString(r.IdToken),
		RefreshToken: aws.ToString(r.RefreshToken),
		TokenType:    aws.ToString(r.TokenType),
		ExpiresIn:    time.Duration(r.ExpiresIn) * time.Second,
	}, nil
}

func (p *Provider) secretHash(username, clientID string) *string {
	if p.ClientSecret == "" {
		return nil
	}
	return aws.String(SecretHash(p.ClientSecret, username, clientID))
}

func attributes(attrs []identity.Attribute) []types.AttributeType {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]types.AttributeType, len(attrs))
	for i, a := range attrs {
		out[i] = types.AttributeType{Name: aws.String(a.Name), Value: aws.String(a.Value)}
	}
	return out
}
