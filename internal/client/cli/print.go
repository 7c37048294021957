package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	pb "github.com/dmitrijs2005/pinvault/internal/proto"
	"github.com/dustin/go-humanize"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const timeLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// printItems writes one row per item. projectNames maps project IDs to
// names; unknown IDs are shown as is.
func printItems(w io.Writer, items []*pb.Item, projectNames map[string]string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSIZE\tPROJECT\tUPDATED")
	for _, it := range items {
		project := "-"
		if it.GetProjectId() != "" {
			project = it.GetProjectId()
			if name, ok := projectNames[it.GetProjectId()]; ok {
				project = name
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			it.GetId(), it.GetFilename(), it.GetFileType(), humanize.IBytes(uint64(it.GetSize())), project, ago(it.GetUpdatedAt()))
	}
	_ = tw.Flush()
}

func printProjects(w io.Writer, projects []*pb.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tCOLOR\tITEMS\tDESCRIPTION")
	for _, p := range projects {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.GetId(), p.GetName(), p.GetColor(), p.GetItemCount(), p.GetDescription())
	}
	_ = tw.Flush()
}

func printItemHeader(w io.Writer, it *pb.Item) {
	headerColor.Fprintf(w, "%s", it.GetFilename())
	fmt.Fprintf(w, " (%s, %s, updated %s)\n", it.GetFileType(), humanize.IBytes(uint64(it.GetSize())), localTime(it.GetUpdatedAt()))
}

// ago renders a server timestamp relative to now; unset stamps print "-".
func ago(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return humanize.Time(ts.AsTime())
}

func localTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format(timeLayout)
}
