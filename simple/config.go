package simple

import (
    "fmt"
    "os"
    "strings"
    "time"
    "io/ioutil"
    "github.com/aws/aws-sdk-go/aws/session"
)

type Config struct {
    Name string
    LogDirectory string
    ServerPort int
    RdsUser string
    RdsHost string
    RdsPort string
    RdsName string
    DdbPrefix string
    AwsRegion string
    AwsRole string
    Session *session.Session // Configured elsewhere.
}

var configs map[string]Config = map[string]Config {
    "beta": Config{
        Name: "beta",
        LogDirectory: "/home/ec2-user/eurorails/logs",
        ServerPort: 9100,
        RdsUser: "eurorailsiam",
        RdsHost: "beta-eurorails-database.cluster.us-west-2.rds.amazonaws.com",
        RdsPort: "5432",
        RdsName: "eurorailsbeta",
        DdbPrefix: "beta",
        AwsRegion: "us-west-2",
        AwsRole: "arn:aws:iam::042697826304:role/eurorailsHostsDbAccess",
    },
    "prod": Config{
        Name: "prod",
        LogDirectory: "/home/ec2-user/eurorails/logs",
        ServerPort: 9100,
        RdsUser: "eurorailsiam",
        RdsHost: "beta-eurorails-database.cluster.us-west-2.rds.amazonaws.com",
        RdsPort: "5432",
        RdsName: "eurorailsprod",
        DdbPrefix: "prod",
        AwsRegion: "us-west-2",
        AwsRole: "arn:aws:iam::042697826304:role/eurorailsHostsDbAccess",
    },
}

func LoadConfig(filename string) Config {
    configBytes, err := ioutil.ReadFile(filename)

    now := time.Now().Format("2006-01-02T15:04:05.000Z")
    fmt.Printf("\n\n\n%s: Server Start\n", now)
    if err != nil {
        fmt.Printf("%s: LoadConfig err reading '%s', goodbye: %s\n", now, filename, err)
        os.Exit(1)
    }

    stackName := ""
    configVars := strings.TrimSpace(string(configBytes))
    for _, cfg := range strings.Split(configVars, "\n") {
        parts := strings.Split(cfg, "=")
        if parts[0] == "stack" {
            stackName = parts[1]
            break
        }
    }
    if stackName == "" {
        fmt.Printf("%s: LoadConfig found no 'stack' in config.  goodbye.\n", now)
        os.Exit(1)
    }

    stack, ok := configs[stackName]
    if !ok {
        fmt.Printf("%s: LoadConfig unknown stack '%s' set in '%s', goodbye.\n",
            now, stackName, filename)
        os.Exit(1)
    }

    fmt.Printf("%s: LoadConfig '%s'\n", now, stackName)
    return stack
}
