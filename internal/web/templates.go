package web

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// eventDateLayouts mirrors the timestamp shapes the API emits.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatEventDate": func(s string) string {
		for _, layout := range eventDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("Mon, Jan 2 2006 15:04")
			}
		}
		// Show the raw value rather than hiding the event.
		return s
	},
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04:05")
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"roleBadgeColor": func(role string) string {
		switch role {
		case "super-admin":
			return "bg-purple-100 text-purple-800"
		case "admin":
			return "bg-indigo-100 text-indigo-800"
		default:
			return "bg-gray-100 text-gray-800"
		}
	},
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
	// inputDate rewrites a wire timestamp into the shape a
	// datetime-local input accepts; browsers ignore values carrying
	// seconds or a zone.
	"inputDate": func(s string) string {
		for _, layout := range eventDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("2006-01-02T15:04")
			}
		}
		return s
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	_, err = tmpl.New("content").Parse(content)
	if err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			_, err = tmpl.New(filepath.Base(compName)).Parse(compContent)
			if err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .Session}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">
                        Eventify SEU
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        {{if eq (printf "%s" .Session.Role) "user"}}
                        <a href="/feed" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Events</a>
                        {{end}}
                        {{if eq (printf "%s" .Session.Role) "admin"}}
                        <a href="/events/my" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">My Events</a>
                        <a href="/events/new" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">New Event</a>
                        {{end}}
                        {{if eq (printf "%s" .Session.Role) "super-admin"}}
                        <a href="/dashboard" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Dashboard</a>
                        <a href="/events" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Events</a>
                        <a href="/users" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Users</a>
                        <a href="/clubs" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">Clubs</a>
                        {{end}}
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="text-sm text-gray-500 mr-2">{{.Session.Username}}</span>
                    <span class="text-xs px-2 py-1 rounded-full mr-4 {{roleBadgeColor (printf "%s" .Session.Role)}}">{{.Session.Role}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Sign out</a>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"register": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center bg-gray-50 py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">
                Eventify SEU
            </h2>
            <p class="mt-2 text-center text-sm text-gray-600">
                Campus events in one place
            </p>
        </div>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        {{if eq .Mode "signup"}}
        <form class="mt-8 space-y-6" action="/register" method="POST">
            <div class="rounded-md shadow-sm -space-y-px">
                <div>
                    <label for="username" class="sr-only">Username</label>
                    <input id="username" name="username" type="text" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-t-md focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Username">
                </div>
                <div>
                    <label for="email" class="sr-only">Email</label>
                    <input id="email" name="email" type="email" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Email">
                </div>
                <div>
                    <label for="password" class="sr-only">Password</label>
                    <input id="password" name="password" type="password" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-b-md focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Password">
                </div>
            </div>
            <button type="submit"
                    class="group relative w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-indigo-500">
                Create account
            </button>
            <p class="text-center text-sm text-gray-600">
                Already have an account? <a href="/register" class="text-indigo-600 hover:text-indigo-500">Sign in</a>
            </p>
        </form>
        {{else}}
        <form class="mt-8 space-y-6" action="/login" method="POST">
            <div class="rounded-md shadow-sm -space-y-px">
                <div>
                    <label for="email" class="sr-only">Email</label>
                    <input id="email" name="email" type="email" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-t-md focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Email">
                </div>
                <div>
                    <label for="password" class="sr-only">Password</label>
                    <input id="password" name="password" type="password" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-b-md focus:outline-none focus:ring-indigo-500 focus:border-indigo-500 focus:z-10 sm:text-sm"
                           placeholder="Password">
                </div>
            </div>
            <button type="submit"
                    class="group relative w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-indigo-500">
                Sign in
            </button>
            <p class="text-center text-sm text-gray-600">
                New here? <a href="/register?mode=signup" class="text-indigo-600 hover:text-indigo-500">Create an account</a>
            </p>
        </form>
        {{end}}
    </div>
</div>
{{end}}`,

	"feed": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-6 flex justify-between items-center">
        <h1 class="text-2xl font-semibold text-gray-900">Upcoming Events</h1>
        <span class="text-sm text-gray-500">{{len .Events}} of {{.TotalEvents}} events</span>
    </div>

    <form method="GET" action="/feed" class="bg-white shadow rounded-lg p-4 mb-6">
        <div class="grid grid-cols-1 sm:grid-cols-4 gap-4">
            <div class="sm:col-span-2">
                <input type="text" name="search" value="{{.Search}}" placeholder="Search events, descriptions, clubs..."
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
            </div>
            <div>
                <select name="club" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
                    <option value="all">All clubs</option>
                    {{$selected := .ClubFilter}}
                    {{range .Clubs}}
                    <option value="{{.}}" {{if eq . $selected}}selected{{end}}>{{.}}</option>
                    {{end}}
                </select>
            </div>
            <div>
                <select name="sort" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
                    <option value="date" {{if eq .Sort "date"}}selected{{end}}>Newest first</option>
                    <option value="name" {{if eq .Sort "name"}}selected{{end}}>Name A-Z</option>
                    <option value="club" {{if eq .Sort "club"}}selected{{end}}>Club A-Z</option>
                </select>
            </div>
        </div>
        <div class="mt-3 flex items-center space-x-3">
            <button type="submit" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">Apply</button>
            {{if .FiltersActive}}
            <a href="/feed" class="text-sm text-gray-500 hover:text-gray-700">Clear filters</a>
            {{end}}
        </div>
    </form>

    {{if .Events}}
    <div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6">
        {{range .Events}}
        <div class="bg-white shadow rounded-lg overflow-hidden">
            {{if .ImageURL}}
            <img src="{{.ImageURL}}" alt="{{.Name}}" class="w-full h-40 object-cover">
            {{end}}
            <div class="p-4">
                <div class="flex justify-between items-start">
                    <h3 class="text-lg font-medium text-gray-900">{{.Name}}</h3>
                </div>
                <p class="text-sm text-indigo-600 mt-1">{{.Club.Name}}</p>
                <p class="text-sm text-gray-500 mt-1">{{formatEventDate .Date}}</p>
                <p class="text-sm text-gray-600 mt-2">{{truncate .Description 160}}</p>
                {{if .Buttons}}
                <div class="mt-3 flex flex-wrap gap-2">
                    {{range .Buttons}}
                    <a href="{{.URL}}" target="_blank" rel="noopener"
                       class="inline-flex items-center px-3 py-1 text-xs font-medium rounded-full bg-indigo-50 text-indigo-700 hover:bg-indigo-100">{{.Label}}</a>
                    {{end}}
                </div>
                {{end}}
            </div>
        </div>
        {{end}}
    </div>
    {{else}}
    <div class="bg-white shadow rounded-lg p-12 text-center text-gray-500">
        No events match your filters.
    </div>
    {{end}}
</div>
{{end}}`,

	"events/my": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-6 flex justify-between items-center">
        <h1 class="text-2xl font-semibold text-gray-900">My Events</h1>
        <a href="/events/new" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">New Event</a>
    </div>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    {{if .Events}}
    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Event</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Club</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Date</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{range .Events}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Club.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{formatEventDate .Date}}</td>
                    <td class="px-6 py-4 text-right text-sm space-x-3">
                        <a href="/events/{{.ID}}/edit" class="text-indigo-600 hover:text-indigo-500">Edit</a>
                        <form method="POST" action="/events/{{.ID}}/delete" class="inline"
                              onsubmit="return confirm('Delete this event?')">
                            <button type="submit" class="text-red-600 hover:text-red-500">Delete</button>
                        </form>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>
    {{else}}
    <div class="bg-white shadow rounded-lg p-12 text-center text-gray-500">
        You haven't created any events yet.
    </div>
    {{end}}
</div>
{{end}}`,

	"events/new": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">New Event</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <form method="POST" action="/events/new" enctype="multipart/form-data" class="bg-white shadow rounded-lg p-6 space-y-4">
        {{template "event_fields" .}}
        <button type="submit" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">Create event</button>
    </form>
</div>
{{end}}`,

	"events/edit": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Edit Event</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <form method="POST" action="/events/{{.Event.ID}}/edit" enctype="multipart/form-data" class="bg-white shadow rounded-lg p-6 space-y-4">
        {{template "event_fields" .}}
        <button type="submit" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">Save changes</button>
    </form>
</div>
{{end}}`,

	"components/event_fields": `{{define "event_fields"}}
<div>
    <label class="block text-sm font-medium text-gray-700">Name</label>
    <input type="text" name="name" required value="{{with .Event}}{{.Name}}{{end}}"
           class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
</div>
<div>
    <label class="block text-sm font-medium text-gray-700">Description</label>
    <textarea name="description" rows="4" required
              class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">{{with .Event}}{{.Description}}{{end}}</textarea>
</div>
<div>
    <label class="block text-sm font-medium text-gray-700">Date</label>
    <input type="datetime-local" name="date" required value="{{with .Event}}{{inputDate .Date}}{{end}}"
           class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
</div>
<div>
    <label class="block text-sm font-medium text-gray-700">Club</label>
    <select name="club" class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
        {{$current := ""}}{{with .Event}}{{$current = .Club.ID}}{{end}}
        {{range .Clubs}}
        <option value="{{.ID}}" {{if eq .ID $current}}selected{{end}}>{{.Name}}</option>
        {{end}}
    </select>
</div>
<div>
    <label class="block text-sm font-medium text-gray-700">Image</label>
    <input type="file" name="image" accept="image/*" class="mt-1 block w-full text-sm text-gray-500">
</div>
<div>
    <label class="block text-sm font-medium text-gray-700">Links (optional)</label>
    <div class="grid grid-cols-2 gap-2 mt-1">
        {{$next := 0}}
        {{with .Event}}
        {{range $i, $b := .Buttons}}
        <input type="text" name="button_label_{{$i}}" placeholder="Label" value="{{$b.Label}}"
               class="px-3 py-2 border border-gray-300 rounded-md text-sm">
        <input type="url" name="button_url_{{$i}}" placeholder="https://..." value="{{$b.URL}}"
               class="px-3 py-2 border border-gray-300 rounded-md text-sm">
        {{end}}
        {{$next = len .Buttons}}
        {{end}}
        <input type="text" name="button_label_{{$next}}" placeholder="Label" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
        <input type="url" name="button_url_{{$next}}" placeholder="https://..." class="px-3 py-2 border border-gray-300 rounded-md text-sm">
    </div>
</div>
{{end}}`,

	"events/all": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">All Events</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Event</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Club</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Created By</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Date</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{range .Events}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Club.Name}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.CreatedBy.Username}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{formatEventDate .Date}}</td>
                    <td class="px-6 py-4 text-right text-sm">
                        <form method="POST" action="/events/{{.ID}}/remove" class="inline"
                              onsubmit="return confirm('Remove this event?')">
                            <button type="submit" class="text-red-600 hover:text-red-500">Remove</button>
                        </form>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"dashboard": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-8">
        <h1 class="text-2xl font-semibold text-gray-900">Dashboard</h1>
        <p class="mt-1 text-sm text-gray-500">Platform overview</p>
    </div>

    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Events</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.EventCount}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Clubs</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.ClubCount}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Users</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.UserCount}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Admins</dt>
            <dd class="text-lg font-semibold text-indigo-600">{{.AdminCount}}</dd>
        </div>
    </div>

    <p class="text-sm text-gray-400">Up {{.Uptime}}</p>
</div>
{{end}}`,

	"users": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Users</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}

    <div class="bg-white shadow rounded-lg p-6 mb-6">
        <h2 class="text-lg font-medium text-gray-900 mb-4">Create account</h2>
        <form method="POST" action="/users/create" class="grid grid-cols-1 sm:grid-cols-5 gap-3">
            <input type="text" name="username" required placeholder="Username" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input type="email" name="email" required placeholder="Email" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input type="password" name="password" required placeholder="Password" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <select name="role" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
                {{range .Roles}}<option value="{{.}}">{{.}}</option>{{end}}
            </select>
            <button type="submit" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">Create</button>
        </form>
    </div>

    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Username</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Email</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Role</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{$roles := .Roles}}
                {{range .Users}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium text-gray-900">{{.Username}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Email}}</td>
                    <td class="px-6 py-4 text-sm">
                        <form method="POST" action="/users/{{.ID}}/role" class="inline-flex items-center space-x-2">
                            {{$current := .Role}}
                            <select name="role" class="px-2 py-1 border border-gray-300 rounded-md text-xs">
                                {{range $roles}}<option value="{{.}}" {{if eq . $current}}selected{{end}}>{{.}}</option>{{end}}
                            </select>
                            <button type="submit" class="text-indigo-600 hover:text-indigo-500 text-xs">Change</button>
                        </form>
                    </td>
                    <td class="px-6 py-4 text-right text-sm">
                        <form method="POST" action="/users/{{.ID}}/delete" class="inline"
                              onsubmit="return confirm('Delete this account?')">
                            <button type="submit" class="text-red-600 hover:text-red-500">Delete</button>
                        </form>
                    </td>
                </tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"clubs": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Clubs</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}

    <div class="bg-white shadow rounded-lg p-6 mb-6">
        <h2 class="text-lg font-medium text-gray-900 mb-4">Create club</h2>
        <form method="POST" action="/clubs/create" enctype="multipart/form-data" class="grid grid-cols-1 sm:grid-cols-5 gap-3">
            <input type="text" name="name" required placeholder="Name" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input type="text" name="description" placeholder="Description" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input type="url" name="fbLink" placeholder="Facebook link" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input type="file" name="image" accept="image/*" class="text-sm text-gray-500 py-2">
            <button type="submit" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">Create</button>
        </form>
    </div>

    <div class="grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6">
        {{range .Clubs}}
        <div class="bg-white shadow rounded-lg p-4">
            <div class="flex justify-between items-start">
                <h3 class="text-lg font-medium text-gray-900">{{.Name}}</h3>
                <div class="flex items-center space-x-3">
                    <a href="/clubs/{{.ID}}/edit" class="text-indigo-600 hover:text-indigo-500 text-sm">Edit</a>
                    <form method="POST" action="/clubs/{{.ID}}/delete" class="inline"
                          onsubmit="return confirm('Delete this club?')">
                        <button type="submit" class="text-red-600 hover:text-red-500 text-sm">Delete</button>
                    </form>
                </div>
            </div>
            <p class="text-sm text-gray-600 mt-2">{{truncate .Description 120}}</p>
            {{if .FBLink}}
            <a href="{{.FBLink}}" target="_blank" rel="noopener" class="text-sm text-indigo-600 hover:text-indigo-500 mt-2 inline-block">Facebook</a>
            {{end}}
        </div>
        {{end}}
    </div>
</div>
{{end}}`,

	"clubs/edit": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl mx-auto">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Edit Club</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <form method="POST" action="/clubs/{{.Club.ID}}/edit" enctype="multipart/form-data" class="bg-white shadow rounded-lg p-6 space-y-4">
        <div>
            <label class="block text-sm font-medium text-gray-700">Name</label>
            <input type="text" name="name" required value="{{.Club.Name}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Description</label>
            <textarea name="description" rows="4"
                      class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">{{.Club.Description}}</textarea>
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Facebook link</label>
            <input type="url" name="fbLink" value="{{.Club.FBLink}}"
                   class="mt-1 block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-indigo-500 focus:border-indigo-500">
        </div>
        <div>
            <label class="block text-sm font-medium text-gray-700">Logo</label>
            <input type="file" name="image" accept="image/*" class="mt-1 block w-full text-sm text-gray-500">
        </div>
        <button type="submit" class="px-4 py-2 text-sm font-medium text-white bg-indigo-600 rounded-md hover:bg-indigo-700">Save changes</button>
    </form>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="bg-white shadow rounded-lg p-12 text-center">
        <h1 class="text-xl font-semibold text-gray-900">{{.Message}}</h1>
        {{if .Detail}}
        <p class="mt-2 text-sm text-gray-500">{{.Detail}}</p>
        {{end}}
        <a href="/" class="mt-4 inline-block text-sm text-indigo-600 hover:text-indigo-500">Back</a>
    </div>
</div>
{{end}}`,
}
