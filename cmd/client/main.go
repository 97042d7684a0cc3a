// Package main is the Owl & Lion Access terminal client. It drives the same
// session lifecycle as the web client: sign in through the external identity
// provider, register a student profile, or browse the matched-student roster
// as a tutor, with the scripted advisory chatbot available on both sides.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/owl-lion/access-hub/config"
	"github.com/owl-lion/access-hub/internal/application/authflow"
	"github.com/owl-lion/access-hub/internal/application/chat"
	"github.com/owl-lion/access-hub/internal/application/registration"
	"github.com/owl-lion/access-hub/internal/application/roster"
	"github.com/owl-lion/access-hub/internal/domain/advisory"
	"github.com/owl-lion/access-hub/internal/domain/profile"
	"github.com/owl-lion/access-hub/internal/domain/session"
	"github.com/owl-lion/access-hub/internal/domain/shared"
	"github.com/owl-lion/access-hub/internal/infrastructure/external/platform"
	redisstore "github.com/owl-lion/access-hub/internal/infrastructure/persistence/redis"
	"github.com/owl-lion/access-hub/pkg/logger"
	"github.com/owl-lion/access-hub/pkg/timeutil"
)

func main() {
	callbackURL := flag.String("callback", "",
		"identity-provider callback URL carrying the ?code= parameter")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level: cfg.App.LogLevel,
		JSON:  cfg.IsProduction(),
	})
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, *callbackURL); err != nil {
		log.Error("client exited with error", logger.Err(err))
		os.Exit(1)
	}
}

// newTokenStore picks the configured persistence strategy.
func newTokenStore(cfg *config.Config, log *slog.Logger) session.TokenStore {
	if cfg.Tokens.Storage == config.TokenStorageRedis {
		return redisstore.NewTokenStore(redisstore.Config{
			Host:     cfg.Tokens.RedisHost,
			Port:     cfg.Tokens.RedisPort,
			Password: cfg.Tokens.RedisPassword,
			DB:       cfg.Tokens.RedisDB,
			Key:      cfg.Tokens.RedisKey,
			TokenTTL: cfg.Tokens.TokenTTL,
			Logger:   log,
		})
	}
	return session.NewInMemoryTokenStore()
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, callbackURL string) error {
	sess := session.New(newTokenStore(cfg, log))

	client := platform.NewClient(platform.ClientConfig{
		BaseURL: cfg.Platform.BaseURL,
		Tokens:  sess.Tokens(),
		Timeout: cfg.Platform.RequestTimeout,
		Logger:  log,
		Debug:   cfg.App.Debug,
	})

	controller := authflow.NewController(authflow.ControllerConfig{
		Backend: client,
		Session: sess,
		Provider: authflow.ProviderConfig{
			AuthorizeEndpoint: cfg.Identity.AuthorizeEndpoint,
			ClientID:          cfg.Identity.ClientID,
			Scope:             cfg.Identity.Scope,
		},
		Origin: cfg.App.Origin,
		Logger: log,
	}, callbackURL)

	// Exchange a carried code or verify a stored token before first render.
	if err := controller.Run(ctx); err != nil {
		fmt.Println("Sign-in could not be restored:", userMessage(err))
	}

	app := &app{
		cfg:        cfg,
		log:        log,
		session:    sess,
		client:     client,
		controller: controller,
		signUp:     authflow.NewSignUpService(client, log),
		in:         bufio.NewScanner(os.Stdin),
	}
	return app.loop(ctx)
}

// app holds the interactive client's wiring.
type app struct {
	cfg        *config.Config
	log        *slog.Logger
	session    *session.Session
	client     *platform.Client
	controller *authflow.Controller
	signUp     *authflow.SignUpService
	in         *bufio.Scanner
}

// loop renders the view the role router selects until the user quits.
func (a *app) loop(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		switch view := session.Route(a.session); view.Kind {
		case session.ViewUnauthenticated:
			if done := a.unauthenticated(ctx); done {
				return nil
			}
		case session.ViewStudent:
			a.studentFlow(ctx)
		case session.ViewTutorListing, session.ViewTutorDetail:
			a.tutorFlow(ctx)
		}
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// UNAUTHENTICATED VIEW
// ══════════════════════════════════════════════════════════════════════════════

func (a *app) unauthenticated(ctx context.Context) (quit bool) {
	fmt.Println()
	fmt.Println("Owl & Lion Access — sign in to continue")
	fmt.Println("  signin          open the identity provider")
	fmt.Println("  code <url>      paste the callback URL you were redirected to")
	fmt.Println("  signup          create an account")
	fmt.Println("  quit")

	cmd, arg := a.prompt("> ")
	switch cmd {
	case "signin":
		// Terminal navigation: the browser takes over from here.
		fmt.Println("Open this URL in your browser:")
		fmt.Println("  " + a.controller.SignInURL())
	case "code":
		fresh := authflow.NewController(authflow.ControllerConfig{
			Backend: a.client,
			Session: a.session,
			Provider: authflow.ProviderConfig{
				AuthorizeEndpoint: a.cfg.Identity.AuthorizeEndpoint,
				ClientID:          a.cfg.Identity.ClientID,
				Scope:             a.cfg.Identity.Scope,
			},
			Origin: a.cfg.App.Origin,
			Logger: a.log,
		}, arg)
		a.controller = fresh
		if err := fresh.Run(ctx); err != nil {
			fmt.Println("Sign-in failed:", userMessage(err))
		}
	case "signup":
		a.signUpFlow(ctx)
	case "quit", "exit", "":
		return true
	}
	return false
}

func (a *app) signUpFlow(ctx context.Context) {
	form := authflow.SignUpForm{}
	form.UserID = a.ask("Campus ID (digits): ")
	form.DisplayName = a.ask("Display name: ")
	form.Email = a.ask("Email: ")
	form.Role = a.ask("Role (student/tutor): ")

	if errs := a.signUp.Submit(ctx, form); errs != nil {
		for field, msg := range errs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}
	fmt.Println("Account created. Sign in to continue.")
}

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT VIEW
// ══════════════════════════════════════════════════════════════════════════════

func (a *app) studentFlow(ctx context.Context) {
	form := registration.NewForm(a.client, a.log)
	form.Mount(ctx, a.session.UserID())

	var conversation *chat.Conversation
	form.OnFinalized(func(profile.StudentProfile) {
		fmt.Println()
		fmt.Println("Registration complete! We'll match you with a tutor shortly.")
		conversation = chat.NewConversation(chat.Config{
			ReplyDelay: a.cfg.Chat.ReplyDelay,
		})
	})

	for {
		fmt.Println()
		fmt.Println("Student registration")
		fmt.Println("  edit       fill in the form")
		fmt.Println("  submit     validate and submit")
		fmt.Println("  chat <q>   ask the assistant (after submitting)")
		fmt.Println("  logout")

		cmd, arg := a.prompt("student> ")
		switch cmd {
		case "edit":
			a.editDraft(form.Draft())
		case "submit":
			result := form.ValidateAndSubmit(ctx)
			if !result.OK() {
				fmt.Println(result.Message)
				for field, msg := range result.Errors {
					fmt.Printf("  %s: %s\n", field, msg)
				}
			}
		case "chat":
			if conversation == nil {
				fmt.Println("The assistant unlocks once your registration is submitted.")
				continue
			}
			if !conversation.Submit(arg) {
				fmt.Println("Type a question after \"chat\".")
				continue
			}
			printReply(<-conversation.Replies())
		case "logout", "quit":
			if conversation != nil {
				conversation.Close()
			}
			a.controller.Logout()
			return
		}
	}
}

func (a *app) editDraft(draft *profile.Draft) {
	draft.SetStudentID(a.ask("Campus ID (8 digits): "))
	draft.SetDisplayName(a.ask("Display name: "))
	draft.SetEmail(a.ask("Email: "))

	fmt.Println("Disabilities:", options(len(profile.Disabilities)))
	for i, d := range profile.Disabilities {
		fmt.Printf("  %d. %s\n", i+1, d)
	}
	if idx, ok := a.askIndex("Primary disability #: ", len(profile.Disabilities)); ok {
		draft.SetDisability(profile.Disabilities[idx])
	}

	for i, s := range profile.LearningStyles {
		fmt.Printf("  %d. %s\n", i+1, s)
	}
	if idx, ok := a.askIndex("Learning style #: ", len(profile.LearningStyles)); ok {
		draft.SetLearningStyle(profile.LearningStyles[idx])
	}

	for i, f := range profile.LearningFormats {
		fmt.Printf("  %d. %s\n", i+1, f)
	}
	if idx, ok := a.askIndex("Session format #: ", len(profile.LearningFormats)); ok {
		draft.SetLearningFormat(profile.LearningFormats[idx])
	}

	for i, m := range profile.Modalities {
		fmt.Printf("  %d. %s\n", i+1, m)
	}
	if idx, ok := a.askIndex("Modality #: ", len(profile.Modalities)); ok {
		draft.SetModality(profile.Modalities[idx])
	}

	for _, accommodation := range profile.Accommodations {
		answer := a.ask(fmt.Sprintf("Need %s? (y/n): ", accommodation))
		draft.ToggleSetMember(profile.AccommodationsSet, accommodation, strings.EqualFold(answer, "y"))
	}

	for _, subject := range profile.Subjects {
		answer := a.ask(fmt.Sprintf("Interested in %s? (y/n): ", subject))
		draft.ToggleSetMember(profile.SubjectsSet, subject, strings.EqualFold(answer, "y"))
	}

	for _, day := range profile.Weekdays {
		start := a.ask(fmt.Sprintf("%s start time (HH:MM, blank to skip): ", day))
		if start == "" {
			continue
		}
		end := a.ask(fmt.Sprintf("%s end time: ", day))
		if !timeutil.ValidClock(start) || !timeutil.ValidClock(end) {
			fmt.Println("  Times must be HH:MM, skipping", day)
			continue
		}
		if !timeutil.ClockBefore(start, end) {
			fmt.Println("  End time must come after the start, skipping", day)
			continue
		}
		_ = draft.SetAvailability(day, profile.StartTime, start)
		_ = draft.SetAvailability(day, profile.EndTime, end)
	}

	draft.SetAdditionalInfo(a.ask("Anything else we should know? "))

	for {
		path := a.ask("Attach a file by path (blank to finish): ")
		if path == "" {
			break
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			fmt.Println("  Can't read that file, skipping.")
			continue
		}
		draft.AddFiles([]profile.FileHandle{{Name: filepath.Base(path), Size: info.Size()}})
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// TUTOR VIEW
// ══════════════════════════════════════════════════════════════════════════════

func (a *app) tutorFlow(ctx context.Context) {
	navigator := roster.NewNavigator(a.client, a.log)
	// A failed roster fetch keeps the session: the tutor can retry without
	// signing in again.
	for {
		err := navigator.Enter(ctx)
		if err == nil {
			break
		}
		fmt.Println("Couldn't load your students:", userMessage(err))
		fmt.Println("  retry | logout")
		cmd, _ := a.prompt("tutor> ")
		if cmd == "logout" || cmd == "quit" {
			a.controller.Logout()
			return
		}
	}

	for {
		if selected := navigator.Selected(); selected != nil {
			if back := a.tutorDetail(selected); back {
				navigator.Back()
				continue
			}
			a.controller.Logout()
			return
		}

		fmt.Println()
		if navigator.Empty() {
			fmt.Println("No students yet — they'll appear here once matched with you.")
		} else {
			fmt.Println("Your students:")
			for _, s := range navigator.Students() {
				fmt.Printf("  %s  %s (%s)\n", s.StudentID, s.DisplayName, s.PrimaryDisability)
			}
		}
		fmt.Println("  open <id>   view a student")
		fmt.Println("  logout")

		cmd, arg := a.prompt("tutor> ")
		switch cmd {
		case "open":
			if err := navigator.Select(arg); shared.IsNotFound(err) {
				fmt.Println("No such student in your roster.")
			}
		case "logout", "quit":
			a.controller.Logout()
			return
		}
	}
}

// tutorDetail renders one student with the generated study plan and the
// contextual assistant. Returns true to go back to the listing.
func (a *app) tutorDetail(student *profile.StudentProfile) (back bool) {
	plan := advisory.StudyPlan(student.PrimaryDisability)

	fmt.Println()
	fmt.Printf("Student: %s (%s)\n", student.DisplayName, student.PrimaryDisability)
	fmt.Println("Recommended strategies:")
	for _, s := range plan.Strategies {
		fmt.Println("  - " + s)
	}
	fmt.Println("Suggested activities:")
	for _, a := range plan.Activities {
		fmt.Println("  - " + a)
	}
	for _, subject := range student.PreferredSubjects {
		fmt.Printf("%s: %s\n", subject, advisory.SubjectAdvice(subject, student.PrimaryDisability))
	}

	conversation := chat.NewConversation(chat.Config{
		Context:    advisory.Context{Student: student},
		ReplyDelay: a.cfg.Chat.ReplyDelay,
	})
	defer conversation.Close()

	fmt.Println((conversation.Messages()[0]).Text)
	for {
		fmt.Println("  ask <question> | back | logout")
		cmd, arg := a.prompt("detail> ")
		switch cmd {
		case "ask":
			if !conversation.Submit(arg) {
				fmt.Println("Type a question after \"ask\".")
				continue
			}
			printReply(<-conversation.Replies())
		case "back":
			return true
		case "logout", "quit":
			return false
		}
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// INPUT HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// prompt reads one line and splits it into a command and its argument.
func (a *app) prompt(label string) (cmd, arg string) {
	fmt.Print(label)
	if !a.in.Scan() {
		return "quit", ""
	}
	line := strings.TrimSpace(a.in.Text())
	cmd, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

// ask reads one free-form answer.
func (a *app) ask(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

// askIndex reads a 1-based option number.
func (a *app) askIndex(label string, n int) (int, bool) {
	answer := a.ask(label)
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}

// options renders "1-n" for menus.
func options(n int) string {
	return fmt.Sprintf("(1-%d)", n)
}

// printReply renders one assistant message with its campus-time stamp.
func printReply(m chat.Message) {
	fmt.Printf("  [%s] %s\n", timeutil.Stamp(m.Timestamp), m.Text)
}

// userMessage keeps backend details out of the user's face.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 && i+2 < len(msg) {
		return msg[i+2:]
	}
	return msg
}
