package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"stundenplan/client"
)

// Supported subcommands:
// - login:    Obtain a bearer token for a student account
// - echo:     Ping the service, optionally through the token gate
// - subjects: List the subjects offered for course selection
// - student:  Show a student together with their chosen subjects

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	echoCmd := flag.NewFlagSet("echo", flag.ExitOnError)
	subjectsCmd := flag.NewFlagSet("subjects", flag.ExitOnError)
	studentCmd := flag.NewFlagSet("student", flag.ExitOnError)

	loginServer := loginCmd.String("server", "http://localhost:8080", "Base URL of the service")
	loginUsername := loginCmd.String("username", "", "Login username (school email address)")
	loginPassword := loginCmd.String("password", "", "Login password")

	echoServer := echoCmd.String("server", "http://localhost:8080", "Base URL of the service")
	echoMessage := echoCmd.String("message", "ping", "Message to mirror")
	echoToken := echoCmd.String("token", "", "Bearer token; when set the guarded endpoint is used")

	subjectsServer := subjectsCmd.String("server", "http://localhost:8080", "Base URL of the service")
	subjectsToken := subjectsCmd.String("token", "", "Bearer token")

	studentServer := studentCmd.String("server", "http://localhost:8080", "Base URL of the service")
	studentToken := studentCmd.String("token", "", "Bearer token")
	studentUsername := studentCmd.String("username", "", "Username of the student to show")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var err error
	switch os.Args[1] {
	case "login":
		_ = loginCmd.Parse(os.Args[2:])
		err = runLogin(ctx, *loginServer, *loginUsername, *loginPassword)
	case "echo":
		_ = echoCmd.Parse(os.Args[2:])
		err = runEcho(ctx, *echoServer, *echoMessage, *echoToken)
	case "subjects":
		_ = subjectsCmd.Parse(os.Args[2:])
		err = runSubjects(ctx, *subjectsServer, *subjectsToken)
	case "student":
		_ = studentCmd.Parse(os.Args[2:])
		err = runStudent(ctx, *studentServer, *studentToken, *studentUsername)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: stundenplanctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login    Obtain a bearer token")
	fmt.Println("  echo     Ping the service")
	fmt.Println("  subjects List subjects offered for course selection")
	fmt.Println("  student  Show a student with their chosen subjects")
}

func runLogin(ctx context.Context, server, username, password string) error {
	if username == "" || password == "" {
		return errors.New("both -username and -password are required")
	}

	token, err := client.New(server).Login(ctx, username, password)
	if err != nil {
		return err
	}
	fmt.Println(token)

	return nil
}

func runEcho(ctx context.Context, server, message, token string) error {
	c := client.New(server, client.WithToken(token))

	var (
		echoed string
		err    error
	)
	if token != "" {
		echoed, err = c.EchoAuth(ctx, message)
	} else {
		echoed, err = c.Echo(ctx, message)
	}
	if err != nil {
		return err
	}
	fmt.Println(echoed)

	return nil
}

func runSubjects(ctx context.Context, server, token string) error {
	if token == "" {
		return errors.New("-token is required, run login first")
	}

	subjects, err := client.New(server, client.WithToken(token)).Subjects(ctx)
	if err != nil {
		return err
	}
	for _, subject := range subjects {
		fmt.Printf("%d\t%s\t%s\n", subject.ID, subject.Abbreviation, subject.Name)
	}

	return nil
}

func runStudent(ctx context.Context, server, token, username string) error {
	if token == "" || username == "" {
		return errors.New("both -token and -username are required")
	}

	student, err := client.New(server, client.WithToken(token)).StudentWithSubjects(ctx, username)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s (%s), level %s\n", student.FirstName, student.LastName, student.Username, student.Level)
	for _, subject := range student.Subjects {
		fmt.Printf("  %s\t%s\n", subject.Abbreviation, subject.Name)
	}

	return nil
}
