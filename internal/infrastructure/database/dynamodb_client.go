package database

import (
	"context"
	"errors"
	"os"

	"estimaflow/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoTables names the tables the dynamodb store driver uses.
type DynamoTables struct {
	Estimations string
	Projects    string
	Users       string
}

// UsersEmailIndex is the GSI the user repository queries by e-mail.
const UsersEmailIndex = "email-index"

// ConnectDynamoDB creates a DynamoDB client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context) (*dynamodb.Client, error) {
	cfg, err := NewDynamoDBConfigFromEnv(ctx)
	if err != nil {
		return nil, err
	}
	logger.Global().Info().
		Str("region", cfg.Region).
		Str("endpoint", os.Getenv("DYNAMODB_ENDPOINT")).
		Msg("dynamodb client configured")
	return dynamodb.NewFromConfig(cfg), nil
}

func NewDynamoDBConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")

	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	}
	if endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(endpoint))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

// EnsureDynamoTables creates any missing table with on-demand billing. It is
// meant for DynamoDB Local; production tables are provisioned outside the app.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, t DynamoTables) error {
	for _, name := range []string{t.Estimations, t.Projects} {
		if err := createTable(ctx, ddb, tableInput(name)); err != nil {
			return err
		}
	}

	users := tableInput(t.Users)
	users.AttributeDefinitions = append(users.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String("email"),
		AttributeType: types.ScalarAttributeTypeS,
	})
	users.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
		IndexName: aws.String(UsersEmailIndex),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("email"), KeyType: types.KeyTypeHash},
		},
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}}
	return createTable(ctx, ddb, users)
}

func tableInput(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
}

func createTable(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.CreateTableInput) error {
	_, err := ddb.CreateTable(ctx, in)
	var inUse *types.ResourceInUseException
	if errors.As(err, &inUse) {
		return nil
	}
	if err != nil {
		return err
	}
	logger.Global().Info().Str("table", aws.ToString(in.TableName)).Msg("dynamodb table created")
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
