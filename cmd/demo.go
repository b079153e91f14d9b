package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"time"

	"showcase/internal/adapters/out/filesystem"
	"showcase/internal/core/application/usecases/commands"
	"showcase/internal/core/domain/calendar"
	"showcase/internal/core/domain/model/kernel"
	"showcase/internal/core/domain/model/order"
	"showcase/internal/core/domain/model/season"
	"showcase/internal/core/domain/textproc"
	"showcase/internal/pkg/journal"

	"github.com/goodsign/monday"
	"github.com/zoobzio/clockz"
)

// DemoOptions configures a Demo. InputFile and WorkDir are optional; without
// an input file the file section is skipped.
type DemoOptions struct {
	Journal   *journal.Journal
	Clock     clockz.Clock
	Logger    *slog.Logger
	Converter commands.ConvertFileCommandHandler
	InputFile string
	WorkDir   string
	Rand      *rand.Rand
}

// Demo prints a walk through every component of the service.
type Demo struct {
	opts   DemoOptions
	logger *slog.Logger
}

func NewDemo(opts DemoOptions) *Demo {
	if opts.Clock == nil {
		opts.Clock = clockz.RealClock
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.Rand == nil {
		now := uint64(opts.Clock.Now().UnixNano())
		opts.Rand = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Demo{
		opts:   opts,
		logger: opts.Logger.With("component", "demo"),
	}
}

// Run writes every section to out, stopping at the first failure.
func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	sections := []func(context.Context, io.Writer) error{
		d.journalSection,
		d.orderSection,
		d.seasonSection,
		d.textSection,
		d.fileSection,
		d.calendarSection,
	}
	for _, section := range sections {
		if err := section(ctx, out); err != nil {
			return err
		}
	}
	return nil
}

func (d *Demo) journalSection(_ context.Context, out io.Writer) error {
	d.opts.Journal.Log("Test message")
	_, err := d.opts.Journal.WriteTo(out)
	return err
}

func (d *Demo) orderSection(ctx context.Context, out io.Writer) error {
	o, err := order.NewOrder(kernel.NewUUID())
	if err != nil {
		return err
	}

	for _, next := range []order.Status{order.InProgress, order.Delivered, order.Cancelled, order.New} {
		if !o.SetStatus(next) {
			d.logger.WarnContext(ctx, order.ErrDeliveredOrderCannotBeCancelled.Error(),
				"order_id", o.ID().String(),
				"requested", next.String(),
			)
			fmt.Fprintln(out, "Нельзя отменить доставленный заказ.")
		}
		fmt.Fprintf(out, "Order status: %s\n", o.Status())
	}
	return nil
}

func (d *Demo) seasonSection(_ context.Context, out io.Writer) error {
	_, err := fmt.Fprintln(out, season.Summer.Name())
	return err
}

func (d *Demo) textSection(_ context.Context, out io.Writer) error {
	p := textproc.ReplaceSpaces(textproc.Trim(textproc.UpperCase(textproc.Identity())))
	_, err := fmt.Fprintf(out, "%q -> %q\n", "  hello decorated world  ", p.Process("  hello decorated world  "))
	return err
}

func (d *Demo) fileSection(ctx context.Context, out io.Writer) error {
	if d.opts.InputFile == "" {
		d.logger.InfoContext(ctx, "No demo input file configured, skipping file section")
		return nil
	}
	dir := d.opts.WorkDir

	cmd, err := commands.NewConvertFileCommand(d.opts.InputFile, filepath.Join(dir, "output.txt"),
		[]string{textproc.StageUpperCase})
	if err != nil {
		return err
	}
	if err = d.opts.Converter.Handle(ctx, cmd); err != nil {
		return err
	}

	comparison, err := filesystem.CompareCopy(ctx, d.opts.Clock, d.opts.InputFile,
		filepath.Join(dir, "io_copy.txt"), filepath.Join(dir, "nio_copy.txt"))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, comparison)

	if _, err = filesystem.BulkCopy(d.opts.InputFile, filepath.Join(dir, "dest.txt")); err != nil {
		return err
	}
	return nil
}

func (d *Demo) calendarSection(_ context.Context, out io.Writer) error {
	clock := d.opts.Clock
	now := clock.Now()

	fmt.Fprintln(out, "Текущая дата и время: "+calendar.FormatNow(clock))
	fmt.Fprintln(out, calendar.CompareDates(now, now.AddDate(0, 0, 1)))
	fmt.Fprintf(out, "Days to NY: %d\n", calendar.DaysUntilNewYear(clock))
	fmt.Fprintf(out, "2024 leap? %t\n", calendar.IsLeapYear(2024))

	weekends, err := calendar.CountWeekends(int(now.Month()), now.Year())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Weekends this month: %d\n", weekends)

	elapsed := calendar.MeasureExecutionTime(clock, func() { fmt.Fprintln(out, "Test task") })
	fmt.Fprintf(out, "Выполнено за: %d ms\n", elapsed.Milliseconds())

	shifted, err := calendar.ParseAndAddDays("15-11-2023", 10)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, shifted.Format(calendar.ISODateLayout))

	tokyo, err := calendar.ConvertTimeZone(now, "Asia/Tokyo")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Tokyo: "+tokyo.Format(calendar.DateTimeLayout))

	fmt.Fprintf(out, "Age: %d\n", calendar.CalculateAge(clock, time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC)))

	random, err := calendar.RandomDate(d.opts.Rand, now, now.AddDate(0, 1, 0))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Random date: "+random.Format(calendar.ISODateLayout))

	newYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
	fmt.Fprintf(out, "Until New Year: %s\n", calendar.TimeUntil(clock, newYear).Round(time.Second))
	fmt.Fprintf(out, "Working hours this week: %d\n", calendar.WorkingHours(now, now.AddDate(0, 0, 7)))
	fmt.Fprintln(out, calendar.FormatWithLocale(now, monday.LocaleRuRU))
	_, err = fmt.Fprintln(out, calendar.RussianWeekday(now))
	return err
}
