package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// toolEntry binds a tool definition to its request builder and the human
// label prefixed to successful results. Adding a tool is a data-table edit
// here plus a builder in builders.go — never a new dispatch branch.
type toolEntry struct {
	tool  mcp.Tool
	label string
	build buildFunc
}

// catalog is the immutable, declaration-ordered set of tools known at
// startup. It is built once in main and never written afterwards, so it is
// safe to share across concurrent callers without locking.
type catalog struct {
	entries []toolEntry
	index   map[string]*toolEntry
}

func (c *catalog) lookup(name string) (*toolEntry, bool) {
	entry, ok := c.index[name]
	return entry, ok
}

// list returns entries in declaration order, stable across calls — this is
// the order discovery responses present the catalog in.
func (c *catalog) list() []toolEntry {
	return c.entries
}

func newCatalog() *catalog {
	entries := []toolEntry{
		{tool: createAboutTool(), label: "About Goaltrail", build: buildAbout},
		{tool: createReadSelfUserTool(), label: "Your profile", build: buildReadSelfUser},
		{tool: createUpdateSelfUserTool(), label: "Profile updated", build: buildUpdateSelfUser},
		{tool: createCreateGoalTool(), label: "Goal created", build: buildCreateGoal},
		{tool: createUpdateGoalTool(), label: "Goal updated", build: buildUpdateGoal},
		{tool: createDestroyGoalTool(), label: "Goal deleted", build: buildDestroyGoal},
		{tool: createReadOneGoalTool(), label: "Goal", build: buildReadOneGoal},
		{tool: createReadGoalsTool(), label: "Goals", build: buildReadGoals},
		{tool: createReadCurrentFocusTool(), label: "Current focus", build: buildReadCurrentFocus},
		{tool: createGetStoryContextTool(), label: "Story context", build: buildGetStoryContext},
		{tool: createCreateStepsTool(), label: "Steps created", build: buildCreateSteps},
		{tool: createReadStepsTool(), label: "Steps", build: buildReadSteps},
		{tool: createReadOneStepTool(), label: "Step", build: buildReadOneStep},
		{tool: createUpdateStepTool(), label: "Step updated", build: buildUpdateStep},
		{tool: createDestroyStepTool(), label: "Step deleted", build: buildDestroyStep},
		{tool: createSetStepsOrderTool(), label: "Steps reordered", build: buildSetStepsOrder},
		{tool: createCreateStoryTool(), label: "Story created", build: buildCreateStory},
		{tool: createReadStoriesTool(), label: "Stories", build: buildReadStories},
		{tool: createReadOneStoryTool(), label: "Story", build: buildReadOneStory},
		{tool: createCreateScheduledStoryTool(), label: "Scheduled story created", build: buildCreateScheduledStory},
		{tool: createReadScheduledStoriesTool(), label: "Scheduled stories", build: buildReadScheduledStories},
		{tool: createUpdateScheduledStoryTool(), label: "Scheduled story updated", build: buildUpdateScheduledStory},
		{tool: createDestroyScheduledStoryTool(), label: "Scheduled story deleted", build: buildDestroyScheduledStory},
	}

	c := &catalog{
		entries: entries,
		index:   make(map[string]*toolEntry, len(entries)),
	}
	for i := range c.entries {
		c.index[c.entries[i].tool.Name] = &c.entries[i]
	}
	return c
}

// --- Tool definitions ---

func createAboutTool() mcp.Tool {
	return mcp.NewTool("about",
		mcp.WithDescription("Get information about the Goaltrail backend: purpose, version, and usage notes. Use this to verify connectivity."),
	)
}

func createReadSelfUserTool() mcp.Tool {
	return mcp.NewTool("read_self_user",
		mcp.WithDescription("Get the authenticated user's profile: name, about text, and visibility setting."),
	)
}

func createUpdateSelfUserTool() mcp.Tool {
	return mcp.NewTool("update_self_user",
		mcp.WithDescription("Update the authenticated user's profile. Only supplied fields change; omitted fields are left untouched."),
		mcp.WithString("name", mcp.Description("Display name")),
		mcp.WithString("about", mcp.Description("Short bio or profile text")),
		mcp.WithNumber("visibility", mcp.Description("Profile visibility: 0 = public, 1 = private")),
	)
}

func createCreateGoalTool() mcp.Tool {
	return mcp.NewTool("create_goal",
		mcp.WithDescription("Create a new goal."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Goal name (e.g., 'Run a 5K')")),
		mcp.WithString("description", mcp.Description("What achieving this goal looks like")),
		mcp.WithString("story", mcp.Description("Narrative context for the goal")),
		mcp.WithString("notes", mcp.Description("Free-form notes")),
		mcp.WithString("outcome", mcp.Description("Desired outcome when the goal completes")),
	)
}

func createUpdateGoalTool() mcp.Tool {
	return mcp.NewTool("update_goal",
		mcp.WithDescription("Update an existing goal. Only supplied fields change."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the goal to update")),
		mcp.WithString("name", mcp.Description("Goal name")),
		mcp.WithString("description", mcp.Description("Goal description")),
		mcp.WithString("story", mcp.Description("Narrative context for the goal")),
		mcp.WithString("notes", mcp.Description("Free-form notes")),
		mcp.WithString("outcome", mcp.Description("Desired outcome")),
		mcp.WithNumber("status", mcp.Description("Goal status: 0 = pending/active, 1 = complete")),
	)
}

func createDestroyGoalTool() mcp.Tool {
	return mcp.NewTool("destroy_goal",
		mcp.WithDescription("Delete a goal and everything attached to it. This cannot be undone."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the goal to delete")),
	)
}

func createReadOneGoalTool() mcp.Tool {
	return mcp.NewTool("read_one_goal",
		mcp.WithDescription("Get a single goal by ID, including its description, notes, and status."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the goal")),
	)
}

func createReadGoalsTool() mcp.Tool {
	return mcp.NewTool("read_goals",
		mcp.WithDescription("List the user's goals, paginated."),
		mcp.WithNumber("page", mcp.Description("Page number (1-based)")),
		mcp.WithNumber("limit", mcp.Description("Maximum goals per page")),
		mcp.WithArray("ids", mcp.WithStringItems(), mcp.Description("Restrict the listing to these goal IDs")),
	)
}

func createReadCurrentFocusTool() mcp.Tool {
	return mcp.NewTool("read_current_focus",
		mcp.WithDescription("Get the goal and step the user is currently focused on."),
	)
}

func createGetStoryContextTool() mcp.Tool {
	return mcp.NewTool("get_story_context",
		mcp.WithDescription("Get narrative context for story generation: the user's profile, goal, and step details relevant to the current moment."),
		mcp.WithString("goal_id", mcp.Description("Goal to build context for. Uses the current focus if not specified.")),
		mcp.WithString("step_id", mcp.Description("Step to build context for. Uses the current focus if not specified.")),
	)
}

func createCreateStepsTool() mcp.Tool {
	return mcp.NewTool("create_steps",
		mcp.WithDescription("Create an ordered list of steps under a goal. The given order is preserved exactly."),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("ID of the goal the steps belong to")),
		mcp.WithArray("steps", mcp.WithStringItems(), mcp.Required(), mcp.Description("Step names, in the order they should be worked")),
	)
}

func createReadStepsTool() mcp.Tool {
	return mcp.NewTool("read_steps",
		mcp.WithDescription("List the steps of a goal in sequence order, paginated."),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("ID of the goal")),
		mcp.WithNumber("page", mcp.Description("Page number (1-based)")),
		mcp.WithNumber("limit", mcp.Description("Maximum steps per page")),
	)
}

func createReadOneStepTool() mcp.Tool {
	return mcp.NewTool("read_one_step",
		mcp.WithDescription("Get a single step by ID, including its notes, evidence, and status."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the step")),
	)
}

func createUpdateStepTool() mcp.Tool {
	return mcp.NewTool("update_step",
		mcp.WithDescription("Update an existing step. Only supplied fields change."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the step to update")),
		mcp.WithString("name", mcp.Description("Step name")),
		mcp.WithString("notes", mcp.Description("Free-form notes")),
		mcp.WithString("evidence", mcp.Description("Evidence of progress or completion")),
		mcp.WithNumber("status", mcp.Description("Step status: 0 = pending/active, 1 = complete")),
	)
}

func createDestroyStepTool() mcp.Tool {
	return mcp.NewTool("destroy_step",
		mcp.WithDescription("Delete a step. This cannot be undone."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the step to delete")),
	)
}

func createSetStepsOrderTool() mcp.Tool {
	return mcp.NewTool("set_steps_order",
		mcp.WithDescription("Replace the sequence order of a goal's steps. Pass every step ID in the desired order — this is a full replacement, not a partial move."),
		mcp.WithArray("step_ids", mcp.WithStringItems(), mcp.Required(), mcp.Description("All step IDs, in the desired order")),
	)
}

func createCreateStoryTool() mcp.Tool {
	return mcp.NewTool("create_story",
		mcp.WithDescription("Save a motivational story for a goal/step pair."),
		mcp.WithString("goal_id", mcp.Required(), mcp.Description("ID of the goal the story is about")),
		mcp.WithString("step_id", mcp.Required(), mcp.Description("ID of the step the story is about")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Story title")),
		mcp.WithString("story_text", mcp.Required(), mcp.Description("Full story text")),
	)
}

func createReadStoriesTool() mcp.Tool {
	return mcp.NewTool("read_stories",
		mcp.WithDescription("List the stories saved for a step, paginated."),
		mcp.WithString("step_id", mcp.Required(), mcp.Description("ID of the step")),
		mcp.WithNumber("page", mcp.Description("Page number (1-based)")),
		mcp.WithNumber("limit", mcp.Description("Maximum stories per page")),
	)
}

func createReadOneStoryTool() mcp.Tool {
	return mcp.NewTool("read_one_story",
		mcp.WithDescription("Get a single story by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the story")),
	)
}

func createCreateScheduledStoryTool() mcp.Tool {
	return mcp.NewTool("create_scheduled_story",
		mcp.WithDescription("Schedule daily story generation at a local wall-clock time. The time is stored in UTC; pick the utc_offset that is correct for the user right now (daylight saving is not inferred)."),
		mcp.WithString("hour", mcp.Required(), mcp.Enum("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"), mcp.Description("Hour on a 12-hour clock")),
		mcp.WithString("period", mcp.Required(), mcp.Enum("AM", "PM"), mcp.Description("AM or PM")),
		mcp.WithString("utc_offset", mcp.Required(), mcp.Enum(utcOffsets...), mcp.Description("The user's current UTC offset (e.g., '-08:00')")),
		mcp.WithString("goal_id", mcp.Description("Goal to generate stories for. Uses the current focus if not specified.")),
	)
}

func createReadScheduledStoriesTool() mcp.Tool {
	return mcp.NewTool("read_scheduled_stories",
		mcp.WithDescription("List story generation schedules, paginated."),
		mcp.WithNumber("page", mcp.Description("Page number (1-based)")),
		mcp.WithNumber("limit", mcp.Description("Maximum schedules per page")),
	)
}

func createUpdateScheduledStoryTool() mcp.Tool {
	return mcp.NewTool("update_scheduled_story",
		mcp.WithDescription("Update a story generation schedule: change its time (hour, period, and utc_offset together) or pause/resume it."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the schedule to update")),
		mcp.WithString("hour", mcp.Enum("1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"), mcp.Description("Hour on a 12-hour clock")),
		mcp.WithString("period", mcp.Enum("AM", "PM"), mcp.Description("AM or PM")),
		mcp.WithString("utc_offset", mcp.Enum(utcOffsets...), mcp.Description("The user's current UTC offset (e.g., '+10:00')")),
		mcp.WithNumber("status", mcp.Description("Schedule status: 0 = active, 1 = paused")),
	)
}

func createDestroyScheduledStoryTool() mcp.Tool {
	return mcp.NewTool("destroy_scheduled_story",
		mcp.WithDescription("Delete a story generation schedule."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the schedule to delete")),
	)
}
