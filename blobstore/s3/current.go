package s3

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrConcurrentPublish is returned when another publisher won the version race.
var ErrConcurrentPublish = errors.New("concurrent snapshot publish detected")

// DDBClient is the subset of the DynamoDB API used by CurrentStore.
type DDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// CurrentStore tracks the latest published snapshot object for a dataset.
//
// S3 offers no compare-and-swap, so publishing a snapshot from several
// acquisition jobs at once could leave readers pointed at a torn mix of
// objects. CurrentStore uses DynamoDB conditional writes as the commit log:
// the object is uploaded to S3 first, then the "current" pointer advances
// with a conditional put that exactly one publisher wins.
//
// Table schema:
//   - Partition key: dataset (string)
//   - Sort key: version (number), monotonically increasing
//
// Create the table with:
//
//	aws dynamodb create-table \
//	  --table-name peergo-snapshots \
//	  --attribute-definitions AttributeName=dataset,AttributeType=S AttributeName=version,AttributeType=N \
//	  --key-schema AttributeName=dataset,KeyType=HASH AttributeName=version,KeyType=RANGE \
//	  --billing-mode PAY_PER_REQUEST
type CurrentStore struct {
	client  DDBClient
	table   string
	dataset string
}

// NewCurrentStore creates a CurrentStore for the given dataset key.
// dataset is typically the S3 location in "s3://bucket/prefix" form.
func NewCurrentStore(client DDBClient, table, dataset string) *CurrentStore {
	return &CurrentStore{
		client:  client,
		table:   table,
		dataset: dataset,
	}
}

// Current returns the latest published version and snapshot object name.
// A zero version means nothing has been published yet.
func (s *CurrentStore) Current(ctx context.Context) (version uint64, name string, err error) {
	resp, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("dataset = :ds"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ds": &types.AttributeValueMemberS{Value: s.dataset},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, "", fmt.Errorf("query current snapshot: %w", err)
	}
	if len(resp.Items) == 0 {
		return 0, "", nil
	}

	item := resp.Items[0]
	versionAttr, ok := item["version"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", errors.New("invalid version attribute")
	}
	nameAttr, ok := item["object"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", errors.New("invalid object attribute")
	}

	version, err = strconv.ParseUint(versionAttr.Value, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse version: %w", err)
	}
	return version, nameAttr.Value, nil
}

// Publish advances the current pointer to the named snapshot object.
// The object must already exist in S3. Exactly one of any set of concurrent
// publishers succeeds; the rest get ErrConcurrentPublish and should retry
// after re-reading Current.
func (s *CurrentStore) Publish(ctx context.Context, name string) (uint64, error) {
	current, _, err := s.Current(ctx)
	if err != nil {
		return 0, err
	}
	next := current + 1

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item: map[string]types.AttributeValue{
			"dataset": &types.AttributeValueMemberS{Value: s.dataset},
			"version": &types.AttributeValueMemberN{Value: strconv.FormatUint(next, 10)},
			"object":  &types.AttributeValueMemberS{Value: name},
		},
		ConditionExpression: aws.String("attribute_not_exists(version)"),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return 0, ErrConcurrentPublish
		}
		return 0, fmt.Errorf("publish snapshot version: %w", err)
	}
	return next, nil
}
