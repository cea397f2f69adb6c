package repository

import (
	"context"
	"errors"
	"time"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimationsTableName = "estimations"

type lineItemAttr struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Unit        string `dynamodbav:"unit"`
	Quantity    string `dynamodbav:"quantity"`
	Price       string `dynamodbav:"price"`
	Margin      string `dynamodbav:"margin"`
}

type sectionAttr struct {
	ID    string         `dynamodbav:"id"`
	Title string         `dynamodbav:"title"`
	Items []lineItemAttr `dynamodbav:"items"`
}

type estimationItem struct {
	ID        string        `dynamodbav:"id"`
	Name      string        `dynamodbav:"name"`
	Customer  string        `dynamodbav:"customer"`
	Date      string        `dynamodbav:"date"`
	Sections  []sectionAttr `dynamodbav:"sections"`
	CreatedAt string        `dynamodbav:"created_at"`
	UpdatedAt string        `dynamodbav:"updated_at"`
}

// EstimationDynamoRepository persists Estimation aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Sections and items are stored inline as a nested list. Numbers are kept as
// decimal strings so prices round-trip without binary drift.
type EstimationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

// NewEstimationDynamoRepository falls back to ESTIMATIONS_TABLE when tableName is empty.
func NewEstimationDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimationDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("ESTIMATIONS_TABLE", defaultEstimationsTableName)
	}
	return &EstimationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimationDynamoRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimation{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationItem(it), nil
}

// Replace overwrites the whole item, but only if it already exists.
func (r *EstimationDynamoRepository) Replace(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Estimation{}, nil
		}
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *EstimationDynamoRepository) List(ctx context.Context) ([]entities.Estimation, error) {
	var items []estimationItem
	if err := scanAll(ctx, r.ddb, r.tableName, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Estimation, 0, len(items))
	for _, it := range items {
		out = append(out, fromEstimationItem(it))
	}
	return out, nil
}

func toEstimationItem(e entities.Estimation) estimationItem {
	sections := make([]sectionAttr, 0, len(e.Sections))
	for _, s := range e.Sections {
		items := make([]lineItemAttr, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, lineItemAttr{
				ID:          it.ID,
				Title:       it.Title,
				Description: it.Description,
				Unit:        it.Unit,
				Quantity:    floatToString(it.Quantity),
				Price:       floatToString(it.UnitPrice),
				Margin:      floatToString(it.MarginPercent),
			})
		}
		sections = append(sections, sectionAttr{ID: s.ID, Title: s.Title, Items: items})
	}
	return estimationItem{
		ID:        e.ID,
		Name:      e.Name,
		Customer:  e.Customer,
		Date:      e.Date,
		Sections:  sections,
		CreatedAt: formatTime(e.CreatedAt),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func fromEstimationItem(it estimationItem) entities.Estimation {
	sections := make([]entities.Section, 0, len(it.Sections))
	for _, s := range it.Sections {
		items := make([]entities.LineItem, 0, len(s.Items))
		for _, li := range s.Items {
			items = append(items, entities.LineItem{
				ID:            li.ID,
				Title:         li.Title,
				Description:   li.Description,
				Unit:          li.Unit,
				Quantity:      parseFloat(li.Quantity),
				UnitPrice:     parseFloat(li.Price),
				MarginPercent: parseFloat(li.Margin),
			})
		}
		sections = append(sections, entities.Section{ID: s.ID, Title: s.Title, Items: items})
	}
	return entities.Estimation{
		ID:        it.ID,
		Name:      it.Name,
		Customer:  it.Customer,
		Date:      it.Date,
		Sections:  sections,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func deleteByID(ctx context.Context, ddb *dynamodb.Client, table, id string) (bool, error) {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(table),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// scanAll pages through the whole table. Fine for dashboard-sized tables.
func scanAll[T any](ctx context.Context, ddb *dynamodb.Client, table string, out *[]T) error {
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{TableName: aws.String(table)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return err
		}
		*out = append(*out, batch...)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
