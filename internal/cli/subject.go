package cli

import (
	"fmt"

	"github.com/julianstephens/studylit/internal/constants"
)

type SubjectShowCmd struct {
	Subject string `arg:"" optional:"" help:"physics, chemistry or biology. Omit for an overview."`
}

func (c *SubjectShowCmd) Run(ctx *Context) error {
	if c.Subject == "" {
		header("Subjects")
		for _, s := range ctx.Tracker.SubjectStatuses() {
			fmt.Printf("  %-10s %s %3d%%  (%d/%d chapters, target %d)\n",
				s.Name, bar(s.Progress, 20), s.Progress, s.Completed, s.Total, s.Target)
		}
		return nil
	}

	name, ok := constants.ParseSubject(c.Subject)
	if !ok {
		return fmt.Errorf("unknown subject %q (use physics, chemistry or biology)", c.Subject)
	}

	cat := ctx.Tracker.Catalog()
	subject := ctx.Tracker.Subject(name)
	header(fmt.Sprintf("%s · %d%% complete", name, subject.Progress))
	for _, difficulty := range constants.Difficulties {
		fmt.Printf("\n  %s\n", mutedStyle.Render(string(difficulty)))
		for _, chapter := range cat.Chapters[name][difficulty] {
			fmt.Printf("    %s %s\n", checkbox(subject.Chapters[chapter]), chapter)
		}
	}

	if topics := cat.ImportantTopics[name]; len(topics) > 0 {
		fmt.Println()
		header("Important topics")
		for _, topic := range topics {
			fmt.Printf("  • %s\n", topic)
		}
	}
	return nil
}

type SubjectToggleCmd struct {
	Subject string `arg:"" help:"physics, chemistry or biology."`
	Chapter string `arg:"" help:"Chapter name as listed by 'subject show'."`
}

func (c *SubjectToggleCmd) Run(ctx *Context) error {
	done, err := ctx.Tracker.ToggleChapter(constants.SubjectName(c.Subject), c.Chapter)
	if err != nil {
		return err
	}
	ctx.warnOnWriteFailure()

	state := "not done"
	if done {
		state = "done"
	}
	fmt.Printf("✓ %s marked %s (%s now %d%%)\n",
		c.Chapter, state, c.Subject, ctx.Tracker.Subject(constants.SubjectName(c.Subject)).Progress)
	return nil
}
