// Package search maintains a full-text index of message content so
// chat history can be queried by words rather than scanned.
package search

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

// Entry is the indexable projection of a message.
type Entry struct {
	ID      uuid.UUID
	Chat    int
	Sender  string
	Content string
	At      time.Time
}

// Hit is a search result, newest-relevance first.
type Hit struct {
	ID      uuid.UUID
	Chat    int
	Sender  string
	Content string
}

type Index struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIndex(writer *bluge.Writer, log *slog.Logger) *Index {
	return &Index{writer: writer, log: log}
}

// Store indexes or reindexes one message.
func (i *Index) Store(entry Entry) error {
	doc := bluge.NewDocument(entry.ID.String()).
		AddField(bluge.NewKeywordField("chat", strconv.Itoa(entry.Chat)).StoreValue()).
		AddField(bluge.NewKeywordField("sender", entry.Sender).StoreValue()).
		AddField(bluge.NewTextField("content", entry.Content).StoreValue()).
		AddField(bluge.NewDateTimeField("at", entry.At))
	return i.writer.Update(doc.ID(), doc)
}

// Remove drops a message from the index, used on soft delete so
// deleted content stops being findable.
func (i *Index) Remove(msgID uuid.UUID) error {
	return i.writer.Delete(bluge.Identifier(msgID.String()))
}

// Search runs a term match over message content, scoped to one chat.
func (i *Index) Search(ctx context.Context, chat int, terms string, limit int) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("closing index reader", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content")).
		AddMust(bluge.NewTermQuery(strconv.Itoa(chat)).SetField("chat"))

	request := bluge.NewTopNSearch(limit, query)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, err
	}

	var hits []Hit
	match, err := iterator.Next()
	for err == nil && match != nil {
		var hit Hit
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				if id, parseErr := uuid.Parse(string(value)); parseErr == nil {
					hit.ID = id
				}
			case "chat":
				if n, convErr := strconv.Atoi(string(value)); convErr == nil {
					hit.Chat = n
				}
			case "sender":
				hit.Sender = string(value)
			case "content":
				hit.Content = string(value)
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	return hits, nil
}
