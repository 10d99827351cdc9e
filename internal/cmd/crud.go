package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/woopy/woo-cli/internal/api"
	"github.com/woopy/woo-cli/internal/cache"
	"github.com/woopy/woo-cli/internal/config"
	"github.com/woopy/woo-cli/internal/dryrun"
)

// maxConcurrentGets bounds the requests of a multi-ID get.
const maxConcurrentGets = 4

// session is the client and profile one command runs against.
type session struct {
	client  *api.Client
	profile config.Profile

	store      cache.Store
	storeOpen  bool
	closeStore func()
}

func newSession() (*session, error) {
	client, profile, err := newClientFactory().client()
	if err != nil {
		return nil, err
	}
	return &session{client: client, profile: profile, closeStore: func() {}}, nil
}

// cache opens the reference data store on first use. A store that cannot
// be opened leaves caching off for the command.
func (s *session) cache() cache.Store {
	if s.storeOpen {
		return s.store
	}
	s.storeOpen = true
	store, closeFn, err := openCache(s.profile)
	if err != nil {
		return nil
	}
	s.store, s.closeStore = store, closeFn
	return s.store
}

func (s *session) close() {
	s.closeStore()
}

// mutation binds resource-specific flags that set fields on create and update.
type mutation[T any] interface {
	bind(cmd *cobra.Command)
	// apply sets the fields of every changed flag on v.
	apply(ctx context.Context, cmd *cobra.Command, s *session, v *T) error
}

// resource describes one REST collection for the generic get, create,
// update and delete commands.
type resource[T any] struct {
	singular string
	plural   string
	// parents label the IDs of enclosing objects, taken as leading arguments.
	parents []string
	cols    columns[T]
	title   func(*T) string
	id      func(*T) any

	get    func(ctx context.Context, c *api.Client, parents []int, id int) (*T, error)
	create func(ctx context.Context, c *api.Client, parents []int, v *T) (*T, error)
	update func(ctx context.Context, c *api.Client, parents []int, id int, v *T) (*T, error)
	remove func(ctx context.Context, c *api.Client, parents []int, id int, force bool) (any, error)

	// canTrash is set when delete moves to the trash unless --force is given.
	canTrash bool
	fields   func() mutation[T]
	example  string
}

// parentParams labels parent IDs for a dry-run preview.
func (r resource[T]) parentParams(parents []int) map[string]any {
	if len(parents) == 0 {
		return nil
	}
	params := make(map[string]any, len(parents))
	for i, label := range r.parents {
		params[label] = parents[i]
	}
	return params
}

func (r resource[T]) parentUsage() string {
	var b strings.Builder
	for _, p := range r.parents {
		fmt.Fprintf(&b, " <%s-id>", p)
	}
	return b.String()
}

// splitArgs parses the parent IDs and the remaining object IDs.
func (r resource[T]) splitArgs(args []string) ([]int, []string, error) {
	parents := make([]int, len(r.parents))
	for i, label := range r.parents {
		id, err := parseID(args[i], label)
		if err != nil {
			return nil, nil, err
		}
		parents[i] = id
	}
	return parents, args[len(r.parents):], nil
}

func (r resource[T]) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get" + r.parentUsage() + " <id>...",
		Aliases: []string{"g", "show"},
		Short:   fmt.Sprintf("Get one or more %s by ID", r.plural),
		Args:    cobra.MinimumNArgs(len(r.parents) + 1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			parents, rest, err := r.splitArgs(args)
			if err != nil {
				return err
			}
			ids, err := parseIDs(rest, r.singular)
			if err != nil {
				return err
			}
			client, err := getClient()
			if err != nil {
				return err
			}

			items, err := r.getMany(cmdContext(cmd), client, parents, ids)
			if err != nil {
				return err
			}
			if len(items) == 1 {
				return printItem(cmd, &items[0], r.cols)
			}
			return printItems(cmd, items, r.cols, r.plural)
		}),
	}
}

// getMany fetches ids concurrently and returns them in argument order.
func (r resource[T]) getMany(ctx context.Context, client *api.Client, parents []int, ids []int) ([]T, error) {
	items := make([]*T, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentGets)
	for i, id := range ids {
		g.Go(func() error {
			item, err := r.get(gctx, client, parents, id)
			if err != nil {
				return err
			}
			if item == nil {
				return notFound(r.singular, id)
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = *item
	}
	return out, nil
}

func (r resource[T]) createCmd() *cobra.Command {
	var data string
	var fields mutation[T]
	if r.fields != nil {
		fields = r.fields()
	}

	cmd := &cobra.Command{
		Use:     "create" + r.parentUsage(),
		Aliases: []string{"new", "add"},
		Short:   "Create a " + r.singular,
		Example: r.example,
		Args:    cobra.ExactArgs(len(r.parents)),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			parents, _, err := r.splitArgs(args)
			if err != nil {
				return err
			}
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()

			ctx := cmdContext(cmd)
			v := new(T)
			if data != "" {
				if err := decodeData(ctx, data, v); err != nil {
					return err
				}
			}
			if fields != nil {
				if err := fields.apply(ctx, cmd, s, v); err != nil {
					return err
				}
			}
			if data == "" && !localFlagsChanged(cmd) {
				return fmt.Errorf("--data or field flags are required")
			}
			preview := &dryrun.Preview{Operation: "create", Resource: r.singular, Params: r.parentParams(parents)}
			if ok, err := previewWrite(cmd, preview, v, api.BodyFull); ok {
				return err
			}

			created, err := r.create(ctx, s.client, parents, v)
			if err != nil {
				return err
			}
			printAction(cmd, "Created", r.singular, r.id(created), r.title(created))
			return printItem(cmd, created, r.cols)
		}),
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "Request body as JSON, @file or - for stdin")
	if fields != nil {
		fields.bind(cmd)
	}
	return cmd
}

func (r resource[T]) updateCmd() *cobra.Command {
	var data string
	var fields mutation[T]
	if r.fields != nil {
		fields = r.fields()
	}

	cmd := &cobra.Command{
		Use:     "update" + r.parentUsage() + " <id>",
		Aliases: []string{"edit", "set"},
		Short:   "Update a " + r.singular,
		Long: fmt.Sprintf("Update a %s. Only the fields given in --data or by flags are sent.\n"+
			"Fields absent from --data keep their current value.", r.singular),
		Example: r.example,
		Args:    cobra.ExactArgs(len(r.parents) + 1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			parents, rest, err := r.splitArgs(args)
			if err != nil {
				return err
			}
			id, err := parseID(rest[0], r.singular)
			if err != nil {
				return err
			}
			s, err := newSession()
			if err != nil {
				return err
			}
			defer s.close()
			ctx := cmdContext(cmd)

			// Change-tracked resources are loaded first so that only the
			// fields that differ are sent. Others start empty.
			v := new(T)
			_, tracked := any(v).(api.ChangeTracked)
			if tracked {
				current, err := r.get(ctx, s.client, parents, id)
				if err != nil {
					return err
				}
				if current == nil {
					return notFound(r.singular, id)
				}
				v = current
			}
			if data != "" {
				if err := decodeData(ctx, data, v); err != nil {
					return err
				}
			}
			if fields != nil {
				if err := fields.apply(ctx, cmd, s, v); err != nil {
					return err
				}
			}

			changed, err := hasChanges(v)
			if err != nil {
				return err
			}
			if !changed {
				printAction(cmd, "No changes to", r.singular, id, "")
				if isJSON(cmd) {
					return printJSON(cmd, v)
				}
				return nil
			}
			preview := &dryrun.Preview{Operation: "update", Resource: r.singular, ID: id, Params: r.parentParams(parents)}
			if ok, err := previewWrite(cmd, preview, v, api.BodyChanges); ok {
				return err
			}

			updated, err := r.update(ctx, s.client, parents, id, v)
			if err != nil {
				return err
			}
			printAction(cmd, "Updated", r.singular, r.id(updated), r.title(updated))
			return printItem(cmd, updated, r.cols)
		}),
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "Fields to change as JSON, @file or - for stdin")
	if fields != nil {
		fields.bind(cmd)
	}
	return cmd
}

// hasChanges reports whether an update of v would carry any field besides
// the ones sent on every update.
func hasChanges(v any) (bool, error) {
	tracked, ok := v.(api.ChangeTracked)
	if !ok {
		data, err := json.Marshal(v)
		if err != nil {
			return false, err
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return false, err
		}
		return len(fields) > 0, nil
	}
	changes, err := api.Changes(tracked)
	if err != nil {
		return false, err
	}
	if rf, ok := v.(api.RequiredFielder); ok {
		for _, key := range rf.RequiredFields() {
			delete(changes, key)
		}
	}
	return len(changes) > 0, nil
}

// previewIDs is the ID field of a preview: one ID alone, several as a list.
func previewIDs[K any](ids []K) any {
	if len(ids) == 1 {
		return ids[0]
	}
	return ids
}

// localFlagsChanged reports whether any of the command's own flags was set.
// LocalNonPersistentFlags builds a fresh FlagSet, so Visit would see nothing
// set; the flags themselves still carry Changed.
func localFlagsChanged(cmd *cobra.Command) bool {
	changed := false
	cmd.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			changed = true
		}
	})
	return changed
}

// deletedTitle names the object a delete returned, when the server sent it back.
func (r resource[T]) deletedTitle(result any) string {
	if v, ok := result.(*T); ok && v != nil {
		return r.title(v)
	}
	return ""
}

func (r resource[T]) deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "delete" + r.parentUsage() + " <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete one or more " + r.plural,
		Args:    cobra.MinimumNArgs(len(r.parents) + 1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			parents, rest, err := r.splitArgs(args)
			if err != nil {
				return err
			}
			ids, err := parseIDs(rest, r.singular)
			if err != nil {
				return err
			}
			preview := &dryrun.Preview{Operation: "delete", Resource: r.singular, ID: previewIDs(ids), Params: r.parentParams(parents)}
			if r.canTrash && !force {
				preview.Operation = "trash"
			}
			if preview.Params == nil {
				preview.Params = map[string]any{}
			}
			preview.Params["force"] = force || !r.canTrash
			if ok, err := maybeDryRun(cmd, preview); ok {
				return err
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			action := "Deleted"
			if r.canTrash && !force {
				action = "Trashed"
			}
			var results []any
			for _, id := range ids {
				result, err := r.remove(cmdContext(cmd), client, parents, id, force)
				if err != nil {
					return fmt.Errorf("delete %s %d: %w", r.singular, id, err)
				}
				printAction(cmd, action, r.singular, id, r.deletedTitle(result))
				results = append(results, result)
			}
			if !isJSON(cmd) {
				return nil
			}
			if len(results) == 1 {
				return printJSON(cmd, results[0])
			}
			return printJSON(cmd, api.Page[any]{Items: results})
		}),
	}
	if r.canTrash {
		cmd.Flags().BoolVar(&force, "force", false, "Delete permanently instead of moving to the trash")
	}
	return cmd
}
