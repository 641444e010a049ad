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

const (
	defaultInvoicesTableName = "invoices"
	invoicesClientIDIndex    = "client_id-index"
)

type invoiceItem struct {
	ID            string  `dynamodbav:"id"`
	InvoiceNumber string  `dynamodbav:"invoice_number"`
	CreatedAt     string  `dynamodbav:"created_at"`
	IssueDate     string  `dynamodbav:"issue_date,omitempty"`
	CustomerID    string  `dynamodbav:"customer_id,omitempty"`
	CustomerName  string  `dynamodbav:"customer_name,omitempty"`
	ClientID      string  `dynamodbav:"client_id,omitempty"`
	CarMake       string  `dynamodbav:"car_make,omitempty"`
	CarModel      string  `dynamodbav:"car_model,omitempty"`
	CarYear       int     `dynamodbav:"car_year,omitempty"`
	Status        string  `dynamodbav:"status"`
	Amount        float64 `dynamodbav:"amount"`
	CreatedBy     string  `dynamodbav:"created_by,omitempty"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	var out []entities.Invoice
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
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromInvoiceItem(it))
		}
		if res.LastEvaluatedKey == nil {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func (r *InvoiceDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInvoiceItem(it))
	}
	return items, nil
}

func (r *InvoiceDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		CustomerName:  inv.CustomerName,
		ClientID:      inv.ClientID,
		Status:        string(inv.Status),
		Amount:        inv.Amount,
		CreatedBy:     inv.CreatedBy,
		UpdatedAt:     inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !inv.IssueDate.IsZero() {
		it.IssueDate = inv.IssueDate.UTC().Format(time.RFC3339Nano)
	}
	if inv.CustomerInfo != nil {
		it.CustomerID = inv.CustomerInfo.ID
		it.CustomerName = inv.CustomerInfo.Name
		if it.ClientID == "" {
			it.ClientID = inv.CustomerInfo.ID
		}
	}
	if inv.VehicleInfo != nil {
		it.CarMake = inv.VehicleInfo.Make
		it.CarModel = inv.VehicleInfo.Model
		it.CarYear = inv.VehicleInfo.Year
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	inv := entities.Invoice{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		CreatedAt:     createdAt,
		CustomerName:  it.CustomerName,
		ClientID:      it.ClientID,
		Status:        entities.InvoiceStatus(it.Status),
		Amount:        it.Amount,
		CreatedBy:     it.CreatedBy,
		UpdatedAt:     updatedAt,
	}
	if it.IssueDate != "" {
		if d, err := time.Parse(time.RFC3339Nano, it.IssueDate); err == nil {
			inv.IssueDate = d
		}
	}
	if it.CustomerID != "" || it.CustomerName != "" {
		inv.CustomerInfo = &entities.CustomerInfo{ID: it.CustomerID, Name: it.CustomerName}
	}
	if it.CarMake != "" || it.CarModel != "" || it.CarYear != 0 {
		inv.VehicleInfo = &entities.CarDetails{Make: it.CarMake, Model: it.CarModel, Year: it.CarYear}
	}
	return inv
}
