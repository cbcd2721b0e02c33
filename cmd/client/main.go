// Package main initializes and starts the Ihangire Youth client: an
// interactive shell for brainstorming business ideas, chatting with the AI
// advisor, generating names, rendering a logo concept, and browsing the
// per-user history kept in the local store.
package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ihangire/ihangire/internal/client/views"
	"github.com/ihangire/ihangire/internal/config"
	"github.com/ihangire/ihangire/internal/db"
	"github.com/ihangire/ihangire/internal/gemini"
	"github.com/ihangire/ihangire/internal/geo"
	"github.com/ihangire/ihangire/internal/logger"
	"github.com/ihangire/ihangire/internal/models"
	"github.com/ihangire/ihangire/internal/repository"
	"github.com/ihangire/ihangire/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// app bundles everything the shell needs. The per-user controllers are
// rebuilt whenever the session changes.
type app struct {
	auth     *service.AuthService
	history  *service.HistoryService
	gateway  views.Gateway
	resolver *geo.Resolver
	log      *zap.Logger
	dataDir  string

	user   *models.User
	ideas  *views.IdeasController
	chat   *views.ChatController
	names  *views.NamesController
	image  *views.ImageController
	browse *views.HistoryController
}

// setUser switches the active session and rebuilds the controllers.
func (a *app) setUser(ctx context.Context, user models.User) {
	a.user = &user
	a.ideas = views.NewIdeasController(a.gateway, a.history, user.Email, a.log)
	a.chat = views.NewChatController(a.gateway, a.history, user.Email, a.log)
	a.names = views.NewNamesController(a.gateway, a.history, user.Email, a.log)
	a.image = views.NewImageController(a.gateway, a.log)
	a.browse = views.NewHistoryController(a.history, user.Email)
	a.chat.Hydrate(ctx)
}

func (a *app) clearUser() {
	a.user = nil
	a.ideas, a.chat, a.names, a.image, a.browse = nil, nil, nil, nil, nil
}

func promptLine(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// repl runs the interactive shell loop.
func repl(a *app) {
	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println(titleStyle.Render("Ihangire Youth") + subtleStyle.Render("  — AI business brainstorming for young entrepreneurs"))
	if a.user != nil {
		fmt.Println(okStyle.Render("Logged in as " + a.user.Email))
	} else {
		fmt.Println("Type 'signup <email>' or 'login <email>' to get started, 'help' for all commands.")
	}

	for {
		fmt.Print("ihangire> ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			printHelp()
		case "signup":
			if len(args) < 2 {
				fmt.Println("Usage: signup <email>")
				continue
			}
			password := promptLine(scanner, "Password: ")
			user, err := a.auth.SignUp(ctx, args[1], password)
			if err != nil {
				fmt.Println(errStyle.Render(capitalize(err.Error())))
				continue
			}
			a.setUser(ctx, user)
			fmt.Println(okStyle.Render("Account created successfully!"))
		case "login":
			if len(args) < 2 {
				fmt.Println("Usage: login <email>")
				continue
			}
			password := promptLine(scanner, "Password: ")
			user, err := a.auth.Login(ctx, args[1], password)
			if err != nil {
				fmt.Println(errStyle.Render(capitalize(err.Error())))
				continue
			}
			a.setUser(ctx, user)
			fmt.Println(okStyle.Render("Logged in successfully!"))
		case "social":
			if len(args) < 2 {
				fmt.Println("Usage: social <google|github>")
				continue
			}
			user, err := a.auth.SocialLogin(ctx, args[1])
			if err != nil {
				fmt.Println(errStyle.Render("Unknown provider: " + args[1]))
				continue
			}
			a.setUser(ctx, user)
			fmt.Println(okStyle.Render("Logged in as " + user.Email))
		case "logout":
			a.auth.Logout(ctx)
			a.clearUser()
			fmt.Println("Logged out.")
		case "whoami":
			if a.user == nil {
				fmt.Println("Not logged in.")
			} else {
				fmt.Println(a.user.Email)
			}
		case "exit":
			fmt.Println("Bye")
			return
		default:
			if a.user == nil {
				fmt.Println("Please log in first. Type 'help' for the auth commands.")
				continue
			}
			a.dispatch(ctx, args)
		}
	}
}

// dispatch handles the feature commands available once logged in.
func (a *app) dispatch(ctx context.Context, args []string) {
	switch args[0] {
	case "ideas":
		location := strings.Join(args[1:], " ")
		if location == "" {
			fmt.Println(subtleStyle.Render("No location given, looking up your approximate location..."))
			found, err := a.resolver.Locate(ctx)
			if err != nil {
				fmt.Println(errStyle.Render("Could not determine your location. Try 'ideas <location>'."))
				return
			}
			location = found
			fmt.Println(subtleStyle.Render("Using: " + location))
		}
		fmt.Println(subtleStyle.Render("AI is brainstorming ideas..."))
		a.ideas.Search(ctx, location)
		if a.ideas.State() == views.StateError {
			fmt.Println(errStyle.Render(a.ideas.Err()))
			return
		}
		a.printIdeas(ctx)
	case "analyze":
		index, ok := parseIndex(args, "analyze")
		if !ok {
			return
		}
		fmt.Println(subtleStyle.Render("Gemini Pro is thinking... this complex analysis may take a moment."))
		analysis, err := a.ideas.Analyze(ctx, index)
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return
		}
		fmt.Println(views.RenderAnalysis(analysis))
	case "save":
		index, ok := parseIndex(args, "save")
		if !ok {
			return
		}
		already, err := a.ideas.Save(ctx, index)
		switch {
		case err != nil:
			fmt.Println(errStyle.Render(err.Error()))
		case already:
			fmt.Println("Already saved.")
		default:
			fmt.Println(okStyle.Render("Saved to history."))
		}
	case "sources":
		sources := a.ideas.Sources()
		if len(sources) == 0 {
			fmt.Println("No sources for the last search.")
			return
		}
		fmt.Println(titleStyle.Render("Data sources"))
		for _, source := range sources {
			fmt.Printf("  %s — %s\n", source.Title, source.URI)
		}
	case "chat":
		message := strings.Join(args[1:], " ")
		if message == "" {
			fmt.Println("Usage: chat <message>")
			return
		}
		var printed bool
		a.chat.OnFragment = func(fragment string) {
			printed = true
			fmt.Print(fragment)
		}
		fmt.Print("advisor: ")
		if err := a.chat.Send(ctx, message); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return
		}
		if !printed {
			// Nothing streamed: the transcript ends with the apology.
			messages := a.chat.Messages()
			fmt.Print(messages[len(messages)-1].Text)
		}
		fmt.Println()
	case "starters":
		fmt.Println(titleStyle.Render("Conversation starters"))
		for _, starter := range views.ConversationStarters {
			fmt.Println("  " + starter)
		}
	case "names":
		concept := strings.Join(args[1:], " ")
		if concept == "" {
			fmt.Println("Usage: names <business concept>")
			return
		}
		fmt.Println(subtleStyle.Render("AI is brainstorming names..."))
		a.names.Generate(ctx, concept)
		if a.names.State() == views.StateError {
			fmt.Println(errStyle.Render(a.names.Err()))
			return
		}
		for i, name := range a.names.Names() {
			fmt.Printf("  %2d. %s\n", i+1, name)
		}
	case "copy":
		index, ok := parseIndex(args, "copy")
		if !ok {
			return
		}
		name, err := a.names.Copy(index)
		if err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return
		}
		fmt.Println(okStyle.Render("Copied! ") + name)
	case "savenames":
		already, err := a.names.SaveList(ctx)
		switch {
		case err != nil:
			fmt.Println(errStyle.Render(err.Error()))
		case already:
			fmt.Println("A name list for this concept is already saved.")
		default:
			fmt.Println(okStyle.Render("Saved to history."))
		}
	case "logo":
		concept := strings.Join(args[1:], " ")
		if concept == "" {
			fmt.Println("Usage: logo <business concept>")
			return
		}
		fmt.Println(subtleStyle.Render("AI is drawing your logo concept..."))
		a.image.Generate(ctx, concept)
		if a.image.State() == views.StateError {
			fmt.Println(errStyle.Render(a.image.Err()))
			return
		}
		fmt.Println(okStyle.Render("Logo ready.") + " Use 'savelogo [path]' to write it to disk.")
	case "savelogo":
		path := filepath.Join(a.dataDir, "logo.jpg")
		if len(args) > 1 {
			path = args[1]
		}
		if err := a.image.SaveTo(path); err != nil {
			fmt.Println(errStyle.Render(err.Error()))
			return
		}
		fmt.Println(okStyle.Render("Wrote " + path))
	case "history":
		a.printHistory(ctx)
	default:
		fmt.Println("Unknown command. Type 'help' for a list of commands.")
	}
}

func (a *app) printIdeas(ctx context.Context) {
	for i, idea := range a.ideas.Ideas() {
		saved := ""
		if a.ideas.IsSaved(ctx, i+1) {
			saved = okStyle.Render("  [saved]")
		}
		fmt.Printf("%s%s\n", titleStyle.Render(fmt.Sprintf("%d. %s", i+1, idea.Name)), saved)
		fmt.Printf("   %s\n", idea.Concept)
		fmt.Printf("   %s\n", subtleStyle.Render("Startup cost: "+idea.StartupCost))
	}
	if len(a.ideas.Sources()) > 0 {
		fmt.Println(subtleStyle.Render("Grounded in local listings — type 'sources' to see them."))
	}
}

func (a *app) printHistory(ctx context.Context) {
	bundle := a.browse.Load(ctx)

	fmt.Println(titleStyle.Render("Saved ideas"))
	if len(bundle.SavedIdeas) == 0 {
		fmt.Println(subtleStyle.Render("  none yet"))
	}
	for _, idea := range bundle.SavedIdeas {
		fmt.Printf("  %s — %s (%s)%s\n", idea.Name, idea.Concept, idea.StartupCost, savedAtSuffix(idea.SavedAt))
	}

	fmt.Println(titleStyle.Render("Saved name lists"))
	if len(bundle.SavedNameLists) == 0 {
		fmt.Println(subtleStyle.Render("  none yet"))
	}
	for _, list := range bundle.SavedNameLists {
		fmt.Printf("  %s: %s%s\n", list.Concept, strings.Join(list.Names, ", "), savedAtSuffix(list.SavedAt))
	}

	fmt.Println(titleStyle.Render("Chat transcript"))
	if len(bundle.ChatHistory) == 0 {
		fmt.Println(subtleStyle.Render("  none yet"))
	}
	for _, message := range bundle.ChatHistory {
		fmt.Printf("  %s: %s\n", message.Sender, message.Text)
	}
}

func savedAtSuffix(unix int64) string {
	if unix == 0 {
		return ""
	}
	return subtleStyle.Render("  saved " + time.Unix(unix, 0).Format("2006-01-02"))
}

func parseIndex(args []string, command string) (int, bool) {
	if len(args) < 2 {
		fmt.Printf("Usage: %s <number>\n", command)
		return 0, false
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Usage: %s <number>\n", command)
		return 0, false
	}
	return index, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func printHelp() {
	fmt.Print(`Auth:
  signup <email>       create an account (prompts for password)
  login <email>        log in (prompts for password)
  social <provider>    mock social login: google or github
  logout               log out
  whoami               show the current user

Ideas:
  ideas [location]     brainstorm 5 business ideas (auto-locates if omitted)
  analyze <n>          deep-dive analysis of idea n
  save <n>             save idea n to history
  sources              citations for the last idea search

Advisor:
  chat <message>       ask the AI business advisor
  starters             suggested first questions

Names:
  names <concept>      generate 10 business names
  copy <n>             copy name n to the clipboard
  savenames            save the generated list to history

Logo:
  logo <concept>       generate a logo concept image
  savelogo [path]      write the generated logo to disk

Other:
  history              show everything saved for this user
  help                 this message
  exit                 quit
`)
}

func main() {
	// Parse command-line, config file, and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Prepare the data directory and local store.
	if err := os.MkdirAll(options.DataDir, 0o755); err != nil {
		zapLogger.Fatal("cannot create data directory", zap.Error(err))
	}
	sqlDB, err := db.InitSQLite(filepath.Join(options.DataDir, "ihangire.db"))
	if err != nil {
		zapLogger.Fatal("cannot init local store", zap.Error(err))
	}
	defer sqlDB.Close()

	// Wire repositories and services.
	kv := repository.NewSQLiteKVRepository(sqlDB)
	authService := service.NewAuthService(kv, zapLogger)
	historyService := service.NewHistoryService(kv, zapLogger)

	// The AI gateway needs an API key; without one the shell still runs
	// for auth and history browsing.
	var gateway views.Gateway
	gemClient, err := gemini.NewClient(context.Background(), gemini.Config{
		APIKey:     options.GeminiAPIKey,
		FlashModel: options.FlashModel,
		ProModel:   options.ProModel,
		ImageModel: options.ImageModel,
	}, zapLogger)
	if err != nil {
		fmt.Println(errStyle.Render("AI features disabled: " + err.Error()))
		gateway = unavailableGateway{}
	} else {
		gateway = gemClient
	}

	a := &app{
		auth:     authService,
		history:  historyService,
		gateway:  gateway,
		resolver: geo.NewResolver(),
		log:      zapLogger,
		dataDir:  options.DataDir,
	}

	// Resume a persisted session, if any.
	if user, ok := authService.CurrentUser(context.Background()); ok {
		a.setUser(context.Background(), user)
	}

	repl(a)
}
