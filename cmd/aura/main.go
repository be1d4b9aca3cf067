// Command aura takes a natural language task on the command line, plans it
// with the configured language model, and executes the resulting steps.
package main

import (
    "context"
    "fmt"
    "log"
    "os"
    "strings"

    "github.com/joho/godotenv"

    "github.com/Saksham292001/AuraOS-aura-core/internal/apprentices"
    "github.com/Saksham292001/AuraOS-aura-core/internal/foreman"
    "github.com/Saksham292001/AuraOS-aura-core/internal/llm"
    "github.com/Saksham292001/AuraOS-aura-core/internal/models"
)

func main() {
    _ = godotenv.Load()

    args := os.Args[1:]
    if len(args) == 0 {
        fmt.Println(`Usage: aura "Your natural language command here"`)
        fmt.Println(`Example: aura "summarize wikipedia.org and save to wiki.txt"`)
        os.Exit(0)
    }
    request := strings.Join(args, " ")

    ctx := context.Background()
    client := llm.NewFromEnv(ctx)
    f := foreman.New(client, buildRegistry(client))

    result, err := f.HandleRequest(ctx, request)
    if err != nil {
        log.Fatalf("aura: halting task: %v", err)
    }
    if result.Status == models.RunFailed {
        log.Printf("aura: task failed at step %d: %v", result.FailedStep, result.Output)
        os.Exit(1)
    }
    log.Printf("aura: task completed successfully")
}

func buildRegistry(client llm.Client) *apprentices.Registry {
    reg := apprentices.NewRegistry()
    reg.Register(apprentices.Echo{})
    reg.Register(apprentices.FileWriter{})
    reg.Register(apprentices.FileReader{})
    reg.Register(apprentices.FileManager{})
    reg.Register(apprentices.Archiver{})
    reg.Register(apprentices.PDFReader{})
    reg.Register(apprentices.SpreadsheetCreator{})
    reg.Register(apprentices.SpreadsheetReader{})
    reg.Register(&apprentices.WebResearcher{})
    reg.Register(&apprentices.WebSearcher{})
    reg.Register(&apprentices.Summarizer{Client: client})
    return reg
}
