package web

import (
	"html/template"
	"log"
	"net/http"
)

// Page holds the data rendered into the layout template. Navbar and Content
// are fragments owned by their widgets; the layout never reaches into them.
type Page struct {
	Title      string
	SiteName   string
	SearchTerm string
	Navbar     template.HTML
	Content    template.HTML
}

var layoutTemplate = template.Must(template.New("layout").Parse(layoutHTML))

// RenderPage writes a full HTML page composed of the layout and the given
// fragments.
func RenderPage(w http.ResponseWriter, p Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layoutTemplate.Execute(w, p); err != nil {
		log.Printf("web: rendering page %q: %v", p.Title, err)
	}
}

const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - {{.SiteName}}</title>
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="topbar">
    <a class="brand" href="/">{{.SiteName}}</a>
    <form class="search-form" action="/" method="get">
      <input type="text" name="search" placeholder="Search questions..." value="{{.SearchTerm}}" autocomplete="off">
      <button type="submit">Search</button>
    </form>
    <nav class="navbar" id="navbar">
      {{.Navbar}}
    </nav>
  </header>
  <main class="content">
    {{.Content}}
  </main>
  <script src="/static/script.js"></script>
</body>
</html>`

// StyleCSS returns the site stylesheet, shared with the static export.
func StyleCSS() string { return cssContent }

const cssContent = `:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #2b8a3e;
  --accent-light: #ebfbee;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
}

.topbar {
  display: flex;
  align-items: center;
  gap: 16px;
  padding: 12px 24px;
  border-bottom: 1px solid var(--border);
  background: var(--bg-secondary);
}

.brand {
  font-size: 1.25rem;
  font-weight: 700;
  color: var(--accent);
  text-decoration: none;
}

.search-form { flex: 1; display: flex; gap: 8px; }
.search-form input {
  flex: 1;
  max-width: 420px;
  padding: 6px 10px;
  border: 1px solid var(--border);
  border-radius: 4px;
}

.navbar { display: flex; align-items: center; gap: 12px; }
.navbar a.auth-button {
  padding: 6px 14px;
  border: 1px solid var(--accent);
  border-radius: 4px;
  color: var(--accent);
  text-decoration: none;
}
.navbar a.auth-button.primary { background: var(--accent); color: #fff; }

.content { max-width: 820px; margin: 0 auto; padding: 24px; }

.question {
  padding: 16px 0;
  border-bottom: 1px solid var(--border);
}
.question-title { margin: 0 0 6px; }
.question-title a { color: var(--text); text-decoration: none; }
.question-title a:hover { color: var(--accent); }
.question-body { margin: 6px 0; }
.question-meta, .answer-meta, .comment-meta { color: var(--text-muted); font-size: 0.85rem; }
.question-stats { display: flex; align-items: center; gap: 10px; }

.follow-toggle {
  border: none;
  background: none;
  cursor: pointer;
  font-size: 1.1rem;
  color: var(--text-muted);
}
.follow-toggle.following { color: var(--accent); }

.answer { padding: 12px 0 12px 16px; border-left: 3px solid var(--border); margin: 12px 0; }
.comments { margin-top: 8px; padding-left: 16px; }
.comment { font-size: 0.9rem; margin: 4px 0; }

.pagination {
  display: flex;
  justify-content: center;
  align-items: center;
  gap: 16px;
  padding: 16px 0;
}
.page-control { color: var(--accent); text-decoration: none; }
.page-control.disabled { color: var(--text-muted); cursor: default; }
.empty-forum { color: var(--text-muted); text-align: center; padding: 24px 0; }

.bell { position: relative; cursor: pointer; }
.notification-dropdown {
  display: none;
  position: absolute;
  right: 0;
  top: 28px;
  min-width: 280px;
  max-height: 320px;
  overflow-y: auto;
  margin: 0;
  padding: 8px;
  list-style: none;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 4px;
  box-shadow: 0 4px 12px rgba(0,0,0,0.1);
}
.notification-dropdown.open { display: block; }
.notification { padding: 6px 4px; border-bottom: 1px solid var(--bg-secondary); }
.notification:last-child { border-bottom: none; }
.notification-time { color: var(--text-muted); font-size: 0.8rem; }

.post-form { margin: 16px 0; }
.post-form input[type=text], .post-form textarea, .post-form select {
  width: 100%;
  padding: 8px;
  margin: 4px 0 10px;
  border: 1px solid var(--border);
  border-radius: 4px;
}
.post-form button {
  padding: 8px 18px;
  border: none;
  border-radius: 4px;
  background: var(--accent);
  color: #fff;
  cursor: pointer;
}

.approval-message { padding: 24px; background: var(--accent-light); border-radius: 6px; }
.approval-actions { display: flex; gap: 12px; margin-top: 16px; }
.approval-actions button.reject { background: #c92a2a; }
`

const jsContent = `(function() {
  "use strict";

  // ===== Follow toggle =====
  // The count and icon are patched synchronously from the control's own
  // state; the server call is fire-and-forget and never rolled back. A page
  // reload re-syncs from the backend.
  document.querySelectorAll(".follow-toggle").forEach(function(toggle) {
    toggle.addEventListener("click", function() {
      var questionId = this.dataset.questionId;
      var following = this.dataset.following === "true";
      var followers = parseInt(this.dataset.followers, 10) || 0;

      var body = new URLSearchParams();
      body.set("question-id", questionId);
      body.set("followers", String(followers));
      body.set("following", String(following));
      fetch("/follow", { method: "POST", body: body });

      followers = following ? Math.max(followers - 1, 0) : followers + 1;
      following = !following;

      this.dataset.following = String(following);
      this.dataset.followers = String(followers);
      this.innerHTML = following ? "★" : "☆";
      this.classList.toggle("following", following);

      var count = document.getElementById("follower-count-" + questionId);
      if (count) {
        count.textContent = followers === 1 ? "1 follower" : followers + " followers";
      }
    });
  });

  // ===== Notification bell =====
  var bell = document.getElementById("notification-bell");
  var dropdown = document.getElementById("notification-dropdown");

  function refreshNotifications() {
    fetch("/notifications/fragment").then(function(resp) {
      if (!resp.ok) { return null; }
      return resp.text();
    }).then(function(html) {
      // On failure the dropdown keeps its last-known contents.
      if (html !== null && dropdown) { dropdown.innerHTML = html; }
    }).catch(function() {});
  }

  if (bell && dropdown) {
    bell.addEventListener("click", function() {
      dropdown.classList.toggle("open");
    });

    refreshNotifications();

    // Live updates while the page stays open.
    try {
      var proto = location.protocol === "https:" ? "wss:" : "ws:";
      var socket = new WebSocket(proto + "//" + location.host + "/ws/notifications");
      socket.addEventListener("message", refreshNotifications);
    } catch (e) { /* polling-free fallback: bell still refreshes on load */ }
  }
})();
`
