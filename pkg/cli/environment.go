package cli

/*
Package cli describes the operating environment for the vault-bootstrap cli.
*/

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/WaffleHacks/vault-bootstrap/pkg/constants"
)

const (
	addressKey      = "address"
	tokenKey        = "token"
	awsAccessKeyKey = "aws_access_key"
	awsSecretKeyKey = "aws_secret_key"
	awsRegionKey    = "aws_region"
)

// EnvSettings describes all of the cli environment settings
type EnvSettings struct {
	address      string
	token        string
	awsAccessKey string
	awsSecretKey string
	awsRegion    string
	policyFile   string
	verbosity    string
}

// New reads the relevant environment variables and returns EnvSettings
func New() *EnvSettings {
	v := viper.New()
	v.SetDefault(addressKey, constants.DefaultVaultAddress)
	v.SetDefault(tokenKey, constants.DefaultVaultToken)
	_ = v.BindEnv(addressKey, constants.VaultAddressEnvVar)
	_ = v.BindEnv(tokenKey, constants.VaultTokenEnvVar)
	_ = v.BindEnv(awsAccessKeyKey, constants.AWSAccessKeyEnvVar)
	_ = v.BindEnv(awsSecretKeyKey, constants.AWSSecretKeyEnvVar)
	_ = v.BindEnv(awsRegionKey, constants.AWSRegionEnvVar)

	return &EnvSettings{
		address:      v.GetString(addressKey),
		token:        v.GetString(tokenKey),
		awsAccessKey: v.GetString(awsAccessKeyKey),
		awsSecretKey: v.GetString(awsSecretKeyKey),
		awsRegion:    v.GetString(awsRegionKey),
		policyFile:   constants.DefaultPolicyFile,
		verbosity:    "info",
	}
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.address, "address", s.address, "address of the Vault server")
	fs.StringVar(&s.token, "token", s.token, "token used to authenticate with the Vault server")
	fs.StringVar(&s.policyFile, "policy-file", s.policyFile, "path of the ACL policy document to upload")
	fs.StringVarP(&s.verbosity, "verbosity", "v", s.verbosity, "set log verbosity level")
}

// Address gets the address of the Vault server
func (s *EnvSettings) Address() string {
	return s.address
}

// Token gets the token used to authenticate with the Vault server
func (s *EnvSettings) Token() string {
	return s.token
}

// AWSAccessKey gets the AWS access key id forwarded to the AWS secret engine
func (s *EnvSettings) AWSAccessKey() string {
	return s.awsAccessKey
}

// AWSSecretKey gets the AWS secret access key forwarded to the AWS secret engine
func (s *EnvSettings) AWSSecretKey() string {
	return s.awsSecretKey
}

// AWSRegion gets the AWS region forwarded to the AWS secret engine
func (s *EnvSettings) AWSRegion() string {
	return s.awsRegion
}

// PolicyFile gets the path of the ACL policy document to upload
func (s *EnvSettings) PolicyFile() string {
	return s.policyFile
}

// Verbosity gets the log verbosity level
func (s *EnvSettings) Verbosity() string {
	return s.verbosity
}
