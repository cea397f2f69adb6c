package repository

import (
	"context"

	"estimaflow/internal/domain/entities"
	"estimaflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID            string `dynamodbav:"id"`
	Customer      string `dynamodbav:"customer"`
	RefNumber     string `dynamodbav:"ref_number"`
	ProjectName   string `dynamodbav:"project_name"`
	ProjectNumber string `dynamodbav:"project_number,omitempty"`
	Manager       string `dynamodbav:"manager,omitempty"`
	AreaLocation  string `dynamodbav:"area_location,omitempty"`
	Address       string `dynamodbav:"address,omitempty"`
	DueDate       string `dynamodbav:"due_date,omitempty"`
	Contact       string `dynamodbav:"contact,omitempty"`
	Staff         string `dynamodbav:"staff,omitempty"`
	Status        string `dynamodbav:"status"`
	Email         string `dynamodbav:"email,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client, tableName string) *ProjectDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("PROJECTS_TABLE", defaultProjectsTableName)
	}
	return &ProjectDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := r.put(ctx, p, "attribute_not_exists(#id)"); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) Replace(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := r.put(ctx, p, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var items []projectItem
	if err := scanAll(ctx, r.ddb, r.tableName, &items); err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectItem(it))
	}
	return out, nil
}

func (r *ProjectDynamoRepository) put(ctx context.Context, p entities.Project, condition string) error {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:            p.ID,
		Customer:      p.Customer,
		RefNumber:     p.RefNumber,
		ProjectName:   p.ProjectName,
		ProjectNumber: p.ProjectNumber,
		Manager:       p.Manager,
		AreaLocation:  p.AreaLocation,
		Address:       p.Address,
		DueDate:       p.DueDate,
		Contact:       p.Contact,
		Staff:         p.Staff,
		Status:        string(p.Status),
		Email:         p.Email,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:            it.ID,
		Customer:      it.Customer,
		RefNumber:     it.RefNumber,
		ProjectName:   it.ProjectName,
		ProjectNumber: it.ProjectNumber,
		Manager:       it.Manager,
		AreaLocation:  it.AreaLocation,
		Address:       it.Address,
		DueDate:       it.DueDate,
		Contact:       it.Contact,
		Staff:         it.Staff,
		Status:        entities.ProjectStatus(it.Status),
		Email:         it.Email,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
