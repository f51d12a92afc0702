// Package mongostore хранит таблицу админов одним документом в одной коллекции MongoDB.
// Контракт хранилища (полная замена сериализованного документа) сохраняется: Save
// делает ReplaceOne с upsert по фиксированному _id.
package mongostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
)

const (
	collectionName = "ledger"
	documentID     = "admins"
)

// tableDocument — обертка документа: вся таблица лежит сериализованным JSON блобом.
type tableDocument struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect подключается к MongoDB и проверяет соединение пингом.
func Connect(ctx context.Context, uri, database string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, connErr := mongo.Connect(ctx, clientOptions)
	if connErr != nil {
		return nil, fmt.Errorf("connect to mongo: %s", connErr.Error())
	}

	if pingErr := client.Ping(ctx, nil); pingErr != nil {
		return nil, fmt.Errorf("ping mongo: %s", pingErr.Error())
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

// Load читает единственный документ таблицы. Отсутствие документа и не читаемый блоб
// деградируют в пустую таблицу; транспортные ошибки наружу — иначе временный сбой сети
// выглядел бы как пустая база и следующий Save затер бы данные.
func (s *MongoStore) Load(ctx context.Context) (domain.Table, error) {
	var doc tableDocument
	findErr := s.coll.FindOne(ctx, bson.M{"_id": documentID}).Decode(&doc)
	if findErr != nil {
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return domain.Table{}, nil
		}
		return nil, fmt.Errorf("load store document: %s", findErr.Error())
	}

	var table domain.Table
	if jsonErr := json.Unmarshal(doc.Data, &table); jsonErr != nil {
		return domain.Table{}, nil
	}
	if table == nil {
		table = domain.Table{}
	}
	return table, nil
}

func (s *MongoStore) Save(ctx context.Context, table domain.Table) error {
	data, jsonErr := json.Marshal(table)
	if jsonErr != nil {
		return fmt.Errorf("marshal store document: %s", jsonErr.Error())
	}

	doc := tableDocument{ID: documentID, Data: data}
	opts := options.Replace().SetUpsert(true)

	if _, replaceErr := s.coll.ReplaceOne(ctx, bson.M{"_id": documentID}, doc, opts); replaceErr != nil {
		return fmt.Errorf("save store document: %s", replaceErr.Error())
	}
	return nil
}

// Close разрывает соединение с MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	if disconnectErr := s.client.Disconnect(ctx); disconnectErr != nil {
		return fmt.Errorf("disconnect mongo: %s", disconnectErr.Error())
	}
	return nil
}
