package repository

import (
	"context"
	"errors"
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID                string `dynamodbav:"id"`
	ClientName        string `dynamodbav:"client_name"`
	CreatedAt         string `dynamodbav:"created_at"`
	RepairStatus      string `dynamodbav:"repair_status"`
	DeliveryDate      string `dynamodbav:"delivery_date,omitempty"`
	EstimatedDuration int    `dynamodbav:"estimated_duration,omitempty"`
	IssueDescription  string `dynamodbav:"issue_description,omitempty"`
	CarMake           string `dynamodbav:"car_make,omitempty"`
	CarModel          string `dynamodbav:"car_model,omitempty"`
	CarYear           int    `dynamodbav:"car_year,omitempty"`
	CreatedBy         string `dynamodbav:"created_by,omitempty"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client (repair job) entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	var out []entities.Client
	var startKey map[string]types.AttributeValue

	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range res.Items {
			var it clientItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromClientItem(it))
		}
		if res.LastEvaluatedKey == nil {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *ClientDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RepairStatus) (entities.Client, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #repair_status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":            "id",
			"#repair_status": "repair_status",
			"#updated_at":    "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Client{}, nil
	}
	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(c entities.Client) clientItem {
	it := clientItem{
		ID:                c.ID,
		ClientName:        c.ClientName,
		CreatedAt:         c.CreatedAt.UTC().Format(time.RFC3339Nano),
		RepairStatus:      string(c.RepairStatus),
		EstimatedDuration: c.EstimatedDuration,
		IssueDescription:  c.IssueDescription,
		CreatedBy:         c.CreatedBy,
		UpdatedAt:         c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.DeliveryDate != nil {
		it.DeliveryDate = c.DeliveryDate.UTC().Format(time.RFC3339Nano)
	}
	if c.CarDetails != nil {
		it.CarMake = c.CarDetails.Make
		it.CarModel = c.CarDetails.Model
		it.CarYear = c.CarDetails.Year
	}
	return it
}

func fromClientItem(it clientItem) entities.Client {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	c := entities.Client{
		ID:                it.ID,
		ClientName:        it.ClientName,
		CreatedAt:         createdAt,
		RepairStatus:      entities.RepairStatus(it.RepairStatus),
		EstimatedDuration: it.EstimatedDuration,
		IssueDescription:  it.IssueDescription,
		CreatedBy:         it.CreatedBy,
		UpdatedAt:         updatedAt,
	}
	if it.DeliveryDate != "" {
		if dd, err := time.Parse(time.RFC3339Nano, it.DeliveryDate); err == nil {
			c.DeliveryDate = &dd
		}
	}
	if it.CarMake != "" || it.CarModel != "" || it.CarYear != 0 {
		c.CarDetails = &entities.CarDetails{Make: it.CarMake, Model: it.CarModel, Year: it.CarYear}
	}
	return c
}
