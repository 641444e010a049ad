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

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Date        string `dynamodbav:"date"`
	Time        string `dynamodbav:"time"`
	ClientID    string `dynamodbav:"client_id,omitempty"`
	ClientName  string `dynamodbav:"client_name,omitempty"`
	VehicleInfo string `dynamodbav:"vehicle_info,omitempty"`
	Type        string `dynamodbav:"type"`
	Status      string `dynamodbav:"status"`
	Description string `dynamodbav:"description,omitempty"`
	InvoiceID   string `dynamodbav:"invoice_id,omitempty"`
	CreatedBy   string `dynamodbav:"created_by,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists real appointments in DynamoDB.
// Synthesized appointments never reach this layer; their Provenance tag is
// deliberately not part of the item schema.
//
// Table requirements:
//   - PK: id (string)
//
// The date attribute is stored as whole-second RFC3339 in UTC. That format is
// fixed-width, so the Scan filter's string comparison is equivalent to time
// comparison (RFC3339Nano is not: it trims trailing fractional zeros, and "."
// sorts before "Z"). created_at keeps RFC3339Nano since it is never compared.

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Appointment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Appointment{}, nil
	}

	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

// ListByDateRange returns appointments with from <= date < to.
func (r *AppointmentDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Appointment, error) {
	fromStr := from.UTC().Format(time.RFC3339)
	toStr := to.UTC().Format(time.RFC3339)

	var out []entities.Appointment
	var startKey map[string]types.AttributeValue

	for {
		res, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#date >= :from AND #date < :to"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from": &types.AttributeValueMemberS{Value: fromStr},
				":to":   &types.AttributeValueMemberS{Value: toStr},
			},
			ExpressionAttributeNames: map[string]string{
				"#date": "date",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range res.Items {
			var it appointmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromAppointmentItem(it))
		}
		if res.LastEvaluatedKey == nil {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	it := toAppointmentItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Appointment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *AppointmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.AppointmentStatus) (entities.Appointment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, nil
		}
		return entities.Appointment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Appointment{}, nil
	}
	var it appointmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Appointment{}, err
	}
	return fromAppointmentItem(it), nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:          a.ID,
		Title:       a.Title,
		Date:        a.Date.UTC().Format(time.RFC3339),
		Time:        a.Time,
		ClientID:    a.ClientID,
		ClientName:  a.ClientName,
		VehicleInfo: a.VehicleInfo,
		Type:        string(a.Type),
		Status:      string(a.Status),
		Description: a.Description,
		InvoiceID:   a.InvoiceID,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	date, _ := time.Parse(time.RFC3339, it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Appointment{
		ID:          it.ID,
		Title:       it.Title,
		Date:        date,
		Time:        it.Time,
		ClientID:    it.ClientID,
		ClientName:  it.ClientName,
		VehicleInfo: it.VehicleInfo,
		Type:        entities.AppointmentType(it.Type),
		Status:      entities.AppointmentStatus(it.Status),
		Description: it.Description,
		InvoiceID:   it.InvoiceID,
		CreatedBy:   it.CreatedBy,
		CreatedAt:   createdAt,
	}
}
