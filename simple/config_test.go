package simple

import "testing"

// Every stack must carry the fields the database connector reads.
func TestStackConfigsComplete(t *testing.T) {
    for name, cfg := range configs {
        if cfg.RdsUser == "" || cfg.RdsHost == "" || cfg.RdsPort == "" || cfg.RdsName == "" {
            t.Errorf("stack %s is missing rds fields: %+v", name, cfg)
        }
        if cfg.AwsRegion == "" || cfg.AwsRole == "" {
            t.Errorf("stack %s is missing iam auth fields: %+v", name, cfg)
        }
    }
}
