package workspace

import "github.com/hupe1980/threadkit/core"

// Canned workspace data, stands in for the external mail, task and calendar
// services the widget fronts.

const roadmapEmailBody = `Hey Zach,

Hope you're doing well! I wanted to give you a quick update on our ThreadKit roadmap progress and get your thoughts on a few key items.

We've made solid progress on the widget system - the interactive components are working great and the demos are looking polished. The source annotations feature is about 70% complete and should be ready for testing next week.

A few questions for you:
- How are you feeling about the current mobile experience? I know we flagged some scrolling issues
- Should we prioritize the attachment error handling before the next release?
- Any thoughts on the enhanced widgets roadmap item?

Looking forward to hearing your feedback. Let me know if you want to hop on a quick call to discuss.

Best,
David`

const flightReminderBody = `Hi there,

Your upcoming flight to San Francisco is just around the corner! Here are some important reminders to help ensure your trip goes smoothly:

**Flight Details:**
• Flight: UA 1234
• Date: July 25, 2024
• Departure: 8:45 AM from LAX
• Arrival: 10:30 AM at SFO

**Before You Go:**
✓ Check in online (available 24 hours before departure)
✓ Verify your ID is current and matches your ticket
✓ Review carry-on restrictions
✓ Download the United app for real-time updates

**Weather Update:**
San Francisco will be partly cloudy with highs around 68°F. Don't forget a light jacket!

Have a great trip!

The United Airlines Team`

const brainstormEmailBody = `Hey team,

While I'm in town this week, I'd love to organize a brainstorm session around our widget strategy. I've been thinking about some interesting directions we could take the interactive components.

Here's what I'm envisioning:
• 90-minute working session
• Focus on widget UX patterns and developer experience
• Whiteboard some ideas for enhanced widget types
• Maybe tackle the mobile widget experience too

I'm free Thursday afternoon or Friday morning. Let me know what works for everyone's schedule.

Also, if anyone has specific widget pain points or feature requests, bring them along - would be great to address real developer needs.

Excited to collaborate in person!

Tyler`

// draftEmailBody is streamed piece by piece while the draft composes.
const draftEmailBody = `Hi David,

Thanks for the roadmap update. A few quick questions on the current status:

- How close are source annotations to being testable? Happy to kick the tires next week.
- Are the mobile scrolling fixes scheduled before or after the next release?
- Anything blocking the enhanced widgets work that I can help unblock?

No rush on a call - async answers are fine if that's easier.

Thanks,
Zach`

func fixtureEmails(asset func(string) string) []Email {
	return []Email{
		{
			DraftEmail: DraftEmail{
				Subject: "ThreadKit Roadmap",
				Body:    roadmapEmailBody,
				To:      "zach@threadkit.studio",
			},
			ID:          core.NewID("email"),
			Sender:      "David Weedon",
			SenderImage: asset("david.png"),
			SenderType:  "person",
			SentAt:      "8:40 AM",
		},
		{
			DraftEmail: DraftEmail{
				Subject: "Quick reminders about your upcoming trip to San Francisco",
				Body:    flightReminderBody,
				To:      "zach@threadkit.studio",
			},
			ID:          core.NewID("email"),
			Sender:      "United Airlines",
			SenderImage: asset("united.png"),
			SenderType:  "org",
			SentAt:      "8:12 AM",
		},
		{
			DraftEmail: DraftEmail{
				Subject: "re: Morning brainstorm",
				Body:    brainstormEmailBody,
				To:      "zach@threadkit.studio",
			},
			ID:          core.NewID("email"),
			Sender:      "Tyler Smith",
			SenderImage: asset("tyler.png"),
			SenderType:  "person",
			SentAt:      "Yesterday",
		},
	}
}

func fixtureTasks() []Task {
	newTask := func(title, description, priority, timeframe string, completed bool) Task {
		return Task{
			DraftTask: DraftTask{
				Title:       title,
				Description: description,
				Priority:    priority,
				Timeframe:   timeframe,
			},
			ID:        core.NewID("task"),
			Completed: completed,
		}
	}
	return []Task{
		newTask(
			"Add source annotations to responses",
			"Implement source annotations feature to add context to assistant responses. This is currently marked as 'In progress' in the roadmap.",
			PriorityHigh, TimeframeToday, false,
		),
		newTask(
			"Fix mobile web scrolling issues",
			"Address the rough mobile web experience, particularly scrolling and input caret tracking issues mentioned in known issues.",
			PriorityHigh, TimeframeTomorrow, false,
		),
		newTask(
			"Implement graceful page refresh handling",
			"Fix the issue where refreshing the page while waiting for an assistant message causes the message to be dropped entirely.",
			PriorityHigh, TimeframeWeek, false,
		),
		newTask(
			"Design enhanced interactive widgets",
			"Develop richer interactive elements for the widget system. This is planned for the upcoming roadmap.",
			PriorityHigh, TimeframeMonth, true,
		),
		newTask(
			"Add robust attachment error handling",
			"Implement proper error handling for attachments to prevent items from staying in uploading state indefinitely.",
			PriorityHigh, TimeframeWeek, false,
		),
		newTask(
			"Implement source scope selection",
			"Add the ability for users to choose specific data sources when interacting with the assistant.",
			PriorityLow, TimeframeMonth, false,
		),
		newTask(
			"Add custom fonts support",
			"Enable users to use different typefaces in their ThreadKit interface. This is planned for customization features.",
			PriorityLow, TimeframeMonth, false,
		),
		newTask(
			"Implement dark mode theme switching",
			"Complete the theme switching functionality between light and dark modes with proper system integration.",
			PriorityLow, TimeframeTomorrow, true,
		),
		newTask(
			"Set up ThreadKit Explorer development environment",
			"Configure the complete development setup including dependencies, environment variables, and make commands for local development.",
			PriorityLow, TimeframeToday, true,
		),
	}
}

func fixtureEvents() []CalendarEvent {
	newEvent := func(title, description, date, start, end, calendar string) CalendarEvent {
		return CalendarEvent{
			DraftCalendarEvent: DraftCalendarEvent{
				Title:       title,
				Description: description,
				Date:        date,
				StartTime:   start,
				EndTime:     end,
				Calendar:    calendar,
			},
			ID: core.NewID("event"),
		}
	}
	return []CalendarEvent{
		newEvent("Dentist appointment", "Regular checkup and cleaning", "Wed, July 16", "2:00", "3:00 PM", CalendarPersonal),
		newEvent("Team standup", "Daily team sync meeting", "Thu, July 17", "3:30", "4:00 PM", CalendarWork),
		newEvent("Q3 roadmap review", "Quarterly planning session", "Fri, July 18", "9:00", "10:30 AM", CalendarWork),
		newEvent("Lunch with Sarah", "Catch up over lunch", "Sat, July 19", "12:00", "1:30 PM", CalendarPersonal),
	}
}

func draftTaskFixture() DraftTask {
	return DraftTask{
		Title:       "Design resizable popup mode",
		Description: "Create a design proposal for how ThreadKit's popup mode can support dynamic height and user resizing.",
		Priority:    PriorityLow,
		Timeframe:   TimeframeTomorrow,
	}
}

func draftEventFixture() DraftCalendarEvent {
	return DraftCalendarEvent{
		Title:       "Q3 roadmap review",
		Description: "Quarterly planning session to review and align on the Q3 roadmap.",
		Date:        "Wed 16",
		StartTime:   "9:00",
		EndTime:     "10:30 AM",
		Calendar:    CalendarWork,
	}
}
