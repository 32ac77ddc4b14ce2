package auth

// pageCSS is shared by both callback pages.
const pageCSS = `
        :root {
            --vk-blue: #0077ff;
            --bg: #19191a;
            --card: #222224;
            --text: #e1e3e6;
            --text-muted: #939393;
            --error: #ff5c5c;
        }

        * { margin: 0; padding: 0; box-sizing: border-box; }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg);
            color: var(--text);
            min-height: 100vh;
            display: flex;
            align-items: center;
            justify-content: center;
            padding: 2rem;
        }

        .card {
            width: 100%;
            max-width: 440px;
            background: var(--card);
            border-radius: 12px;
            padding: 2.5rem 2rem;
            text-align: center;
        }

        h1 { font-size: 1.375rem; margin: 1rem 0 0.5rem; }

        p { color: var(--text-muted); line-height: 1.5; }

        code {
            display: inline-block;
            margin-top: 1rem;
            padding: 0.25rem 0.5rem;
            border-radius: 6px;
            background: rgba(255, 255, 255, 0.06);
            font-size: 0.875rem;
        }

        .badge {
            width: 56px;
            height: 56px;
            border-radius: 50%;
            display: inline-flex;
            align-items: center;
            justify-content: center;
            font-size: 1.75rem;
            color: #fff;
        }

        .badge.ok { background: var(--vk-blue); }
        .badge.fail { background: var(--error); }
`

const successTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Authorized - VK CLI</title>
    <style>` + pageCSS + `</style>
</head>
<body>
    <div class="card">
        <div class="badge ok">&#10003;</div>
        <h1>Authorization complete</h1>
        <p>You can close this tab and return to the terminal.</p>
        <code>vk auth status</code>
    </div>
</body>
</html>`

const failureTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Authorization failed - VK CLI</title>
    <style>` + pageCSS + `</style>
</head>
<body>
    <div class="card">
        <div class="badge fail">&#10007;</div>
        <h1>Authorization failed</h1>
        <p>{{.Message}}</p>
        <code>vk auth login</code>
    </div>
</body>
</html>`
