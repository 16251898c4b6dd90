package database

// IAM-auth Postgres connector, adapted from:
// https://github.com/califlower/golang-aws-rds-iam-postgres

import (
    "context"
    "database/sql"
    "database/sql/driver"
    "fmt"
    "time"
    "github.com/aws/aws-sdk-go-v2/aws/external"
    v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
    "github.com/aws/aws-sdk-go-v2/aws/stscreds"
    "github.com/aws/aws-sdk-go-v2/service/rds/rdsutils"
    "github.com/aws/aws-sdk-go-v2/service/sts"
    "github.com/jackc/pgx/v4/stdlib"
    "github.com/jmoiron/sqlx"
    "golang.org/x/xerrors"
    "local/eurorails/simple"
)

// Without a deadline a dead endpoint can hang an open for minutes.
const rdsConnectTimeout = 5 * time.Second

type rdsConnector struct {
    config simple.Config
}

// RdsConnect returns a pooled sqlx handle to the stack's postgres cluster.
// Each new pool connection is authenticated with a fresh IAM token.
func (db *DB) RdsConnect() (*sqlx.DB, error) {
    conn := sql.OpenDB(&rdsConnector{config: db.config})
    conn.SetMaxOpenConns(20)
    if err := conn.Ping(); err != nil {
        return nil, xerrors.Errorf("could not ping db: %w", err)
    }

    return sqlx.NewDb(conn, "pgx"), nil
}

// database/sql calls this for every new pool connection.
func (c *rdsConnector) Connect(ctx context.Context) (driver.Conn, error) {
    token, err := c.authToken()
    if err != nil {
        return nil, xerrors.Errorf("could not build auth token: %w", err)
    }

    dsn := fmt.Sprintf("user=%s dbname=%s sslmode=require port=%s host=%s password=%s",
        c.config.RdsUser, c.config.RdsName, c.config.RdsPort, c.config.RdsHost, token)
    connector, err := (&stdlib.Driver{}).OpenConnector(dsn)
    if err != nil {
        return nil, err
    }

    return connector.Connect(ctx)
}

func (c *rdsConnector) Driver() driver.Driver {
    return c
}

// Required by driver.Driver; the pool only ever dials through Connect.
func (c *rdsConnector) Open(name string) (driver.Conn, error) {
    return nil, xerrors.New("open by dsn unsupported")
}

func (c *rdsConnector) authToken() (string, error) {
    cfg, err := external.LoadDefaultAWSConfig()
    if err != nil {
        return "", xerrors.Errorf("could not load aws config: %w", err)
    }
    cfg.Region = c.config.AwsRegion

    signer := v4.NewSigner(stscreds.NewAssumeRoleProvider(sts.New(cfg), c.config.AwsRole))

    ctx, cancel := context.WithTimeout(context.Background(), rdsConnectTimeout)
    defer cancel()
    return rdsutils.BuildAuthToken(ctx,
        fmt.Sprintf("%s:%s", c.config.RdsHost, c.config.RdsPort),
        c.config.AwsRegion, c.config.RdsUser, signer)
}
