// Package constants defines the constant values shared across vault-bootstrap.
package constants

const (
	// DefaultVaultAddress is the address used to reach Vault when VAULT_ADDR is unset
	DefaultVaultAddress = "http://172.96.0.3:8200"

	// DefaultVaultToken is the token used to authenticate with Vault when VAULT_TOKEN is unset
	DefaultVaultToken = "dev-token"

	// VaultAddressEnvVar is the environment variable holding the address of the Vault server
	VaultAddressEnvVar = "VAULT_ADDR"

	// VaultTokenEnvVar is the environment variable holding the Vault authentication token
	VaultTokenEnvVar = "VAULT_TOKEN"

	// AWSAccessKeyEnvVar is the environment variable holding the AWS access key id
	// forwarded to the AWS secret engine's root configuration
	AWSAccessKeyEnvVar = "AWS_ACCESS_KEY_ID"

	// AWSSecretKeyEnvVar is the environment variable holding the AWS secret access key
	AWSSecretKeyEnvVar = "AWS_SECRET_ACCESS_KEY"

	// AWSRegionEnvVar is the environment variable holding the AWS region
	AWSRegionEnvVar = "AWS_REGION"
)

const (
	// DatabaseMount is the mount path of the database secret engine
	DatabaseMount = "database"

	// AWSMount is the mount path of the AWS secret engine
	AWSMount = "aws"

	// ServicesMount is the mount path of the versioned key-value engine
	// holding per-service configuration
	ServicesMount = "services"

	// PolicyName is the name of the ACL policy granting wafflemaker its
	// permissions, and the policy bound to minted deployment tokens
	PolicyName = "wafflemaker"

	// DefaultPolicyFile is the path the policy document is read from when
	// --policy-file is not given
	DefaultPolicyFile = "./wafflemaker.hcl"
)
