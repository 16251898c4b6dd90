package database

import(
    "github.com/jmoiron/sqlx"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "local/eurorails/simple"
    "local/eurorails/log"
)

type DB struct {
    config simple.Config
    ddb *dynamodb.DynamoDB
    c *sqlx.DB
}

func New(config simple.Config) *DB {
    return &DB{
        config: config,
        ddb: dynamodb.New(config.Session),
        c: nil,
    }
}

func (db *DB) Run(initDone chan struct{}) error {
    conn, err := db.RdsConnect()
    if err != nil {
        db.errorf("Unable to connect to rdb: %s", err)
        return err
    }
    db.c = conn
    db.infof("Connected to rdb: %s", db.config.RdsHost)

    initDone <- struct{}{}
    return nil
}

func (db *DB) tracef(msg string, fargs ...interface{}) {
    log.Trace(msg, fargs...)
}

func (db *DB) debugf(msg string, fargs ...interface{}) {
    log.Debug(msg, fargs...)
}

func (db *DB) infof(msg string, fargs ...interface{}) {
    log.Info(msg, fargs...)
}

func (db *DB) warnf(msg string, fargs ...interface{}) {
    log.Warn(msg, fargs...)
}

func (db *DB) errorf(msg string, fargs ...interface{}) {
    log.Error(msg, fargs...)
}
