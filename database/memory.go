package database

import(
    "encoding/json"
    "fmt"
    "github.com/aws/aws-sdk-go/aws"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

// Bot memory lives in DynamoDB, one item per (game, bot), the whole record
// as a single json attribute.  It is read and written once per turn so the
// access pattern never needs queries.

func (db *DB) memoryTable() *string {
    return aws.String(fmt.Sprintf("%s-Eurorails-BotMemory", db.config.DdbPrefix))
}

func memoryKey(gid int, pid string) map[string]*dynamodb.AttributeValue {
    return map[string]*dynamodb.AttributeValue{
        "K": {S: aws.String(fmt.Sprintf("%d/%s", gid, pid))},
    }
}

// GetBotMemory returns nil when no memory exists yet; the engine creates
// it lazily on the first turn.
func (db *DB) GetBotMemory(gid int, pid string) (*simple.BotMemory, error) {
    result, err := db.ddb.GetItem(&dynamodb.GetItemInput{
        TableName: db.memoryTable(),
        Key: memoryKey(gid, pid),
        ConsistentRead: aws.Bool(true),
    })
    if err != nil {
        return nil, xerrors.Errorf("get bot memory %d/%s: %w", gid, pid, err)
    }
    if result.Item == nil {
        return nil, nil
    }
    attr, ok := result.Item["V"]
    if !ok || attr.S == nil {
        return nil, xerrors.Errorf("bot memory %d/%s has no V attribute", gid, pid)
    }
    var m simple.BotMemory
    if err := json.Unmarshal([]byte(*attr.S), &m); err != nil {
        return nil, xerrors.Errorf("unmarshal bot memory %d/%s: %w", gid, pid, err)
    }
    return &m, nil
}

func (db *DB) PutBotMemory(gid int, pid string, m simple.BotMemory) error {
    bytes, err := json.Marshal(m)
    if err != nil {
        return xerrors.Errorf("marshal bot memory %d/%s: %w", gid, pid, err)
    }
    item := memoryKey(gid, pid)
    item["V"] = &dynamodb.AttributeValue{S: aws.String(string(bytes))}
    _, err = db.ddb.PutItem(&dynamodb.PutItemInput{
        TableName: db.memoryTable(),
        Item: item,
    })
    if err != nil {
        return xerrors.Errorf("put bot memory %d/%s: %w", gid, pid, err)
    }
    return nil
}

// DeleteBotMemory is called when a game ends or a bot is removed.
func (db *DB) DeleteBotMemory(gid int, pid string) error {
    _, err := db.ddb.DeleteItem(&dynamodb.DeleteItemInput{
        TableName: db.memoryTable(),
        Key: memoryKey(gid, pid),
    })
    if err != nil {
        return xerrors.Errorf("delete bot memory %d/%s: %w", gid, pid, err)
    }
    return nil
}
