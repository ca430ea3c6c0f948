package main

import (
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"
)

var (
	GitCommit string
	GitTag    string
	BuildTime string
)

func main() {
	flags := flag.NewFlagSet("library-manager", flag.ExitOnError)
	configFile := flags.StringP("config", "c", "./config.yml", "path to the yaml configuration file")
	envFile := flags.StringP("env", "e", "./config.env", "path to the dotenv file")
	showVersion := flags.BoolP("version", "v", false, "print version details and exit")
	_ = flags.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("library-manager tag=%s commit=%s built=%s\n", GitTag, GitCommit, BuildTime)
		return
	}

	app, err := NewApp(Options{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
		GitCommit:  GitCommit,
		GitTag:     GitTag,
		BuildTime:  BuildTime,
	})
	if err != nil {
		log.Fatal("application failed to initialized: ", err)
	}
	err = app.Run()
	if err != nil {
		log.Fatal("application exited. check logs for more details.", err)
	}
}
