package report

// htmlTemplate is the main HTML template for the sweep report.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Prime-sum Sweep {{.RunID}}</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f8fafc;
            --bg-card: #ffffff;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
            --accent-primary: #3b82f6;
            --accent-success: #22c55e;
            --accent-warning: #f59e0b;
            --accent-error: #ef4444;
            --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        .header {
            background: var(--bg-card);
            border-radius: 12px;
            padding: 2rem;
            margin-bottom: 2rem;
            box-shadow: var(--shadow);
        }

        .header h1 {
            font-size: 1.75rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
        }

        .header .meta {
            color: var(--text-secondary);
            font-size: 0.9rem;
        }

        .grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(480px, 1fr));
            gap: 2rem;
        }

        .card {
            background: var(--bg-card);
            border-radius: 12px;
            padding: 1.5rem;
            box-shadow: var(--shadow);
        }

        .card h2 {
            font-size: 1.1rem;
            font-weight: 600;
            margin-bottom: 1rem;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 0.9rem;
        }

        th, td {
            text-align: right;
            padding: 0.5rem 0.75rem;
            border-bottom: 1px solid var(--border-color);
        }

        th:first-child, td:first-child {
            text-align: left;
        }

        th {
            color: var(--text-secondary);
            font-weight: 600;
        }

        .no-data {
            color: var(--text-secondary);
            font-style: italic;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Prime-sum Concurrency Sweep</h1>
            <div class="meta">
                Run {{.RunID}} &middot; {{.Config.BaseURL}} &middot; n = {{.Config.N}} &middot;
                {{.StartTime.Format "2006-01-02 15:04:05"}} &middot; {{formatDuration .Duration}}
            </div>
        </div>

        <div class="grid">
            <div class="card"><h2>Wall Time</h2><canvas id="wallChart"></canvas></div>
            <div class="card"><h2>Throughput</h2><canvas id="throughputChart"></canvas></div>
            <div class="card"><h2>Speedup</h2><canvas id="speedupChart"></canvas></div>
            <div class="card"><h2>Success Rate</h2><canvas id="successChart"></canvas></div>
            <div class="card" style="grid-column: 1 / -1;">
                <h2>Latency Distribution (successful requests only)</h2>
                <canvas id="latencyChart"></canvas>
            </div>
        </div>

        <div class="card" style="margin-top: 2rem;">
            <h2>Per-Level Results</h2>
            <table>
                <thead>
                    <tr>
                        <th>Concurrency</th>
                        <th>Wall Time</th>
                        <th>Throughput</th>
                        <th>Success Rate</th>
                        <th>Mean Latency</th>
                        <th>Successes</th>
                    </tr>
                </thead>
                <tbody>
                    {{range .Summaries}}
                    <tr>
                        <td>{{.Concurrency}}</td>
                        <td>{{formatDuration .WallTime}}</td>
                        <td>{{printf "%.2f" .Throughput}} req/s</td>
                        <td>{{percent .SuccessRate}}</td>
                        {{if gt (len .Latencies) 0}}
                        <td>{{meanLatency .}}</td>
                        {{else}}
                        <td class="no-data">no data</td>
                        {{end}}
                        <td>{{len .Latencies}}</td>
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>
    </div>

    <script>
        const levels = {{.LevelsJSON}};
        const labels = levels.map(l => l.concurrency);

        const lineOptions = {
            responsive: true,
            plugins: { legend: { display: false } },
            scales: { y: { beginAtZero: true } }
        };

        new Chart(document.getElementById('wallChart'), {
            type: 'line',
            data: {
                labels: labels,
                datasets: [{
                    label: 'Wall time (s)',
                    data: levels.map(l => l.wallTime),
                    borderColor: '#3b82f6',
                    tension: 0.2
                }]
            },
            options: lineOptions
        });

        new Chart(document.getElementById('throughputChart'), {
            type: 'line',
            data: {
                labels: labels,
                datasets: [{
                    label: 'Requests/s',
                    data: levels.map(l => l.throughput),
                    borderColor: '#22c55e',
                    tension: 0.2
                }]
            },
            options: lineOptions
        });

        new Chart(document.getElementById('speedupChart'), {
            type: 'line',
            data: {
                labels: labels,
                datasets: [{
                    label: 'Speedup vs first level',
                    data: levels.map(l => l.speedup),
                    borderColor: '#a855f7',
                    tension: 0.2
                }]
            },
            options: lineOptions
        });

        new Chart(document.getElementById('successChart'), {
            type: 'line',
            data: {
                labels: labels,
                datasets: [{
                    label: 'Success rate (%)',
                    data: levels.map(l => l.successRate * 100),
                    borderColor: '#f59e0b',
                    tension: 0.2
                }]
            },
            options: {
                responsive: true,
                plugins: { legend: { display: false } },
                scales: { y: { beginAtZero: true, max: 100 } }
            }
        });

        // Percentile bands stand in for a boxplot; levels with no
        // successful requests render as gaps.
        new Chart(document.getElementById('latencyChart'), {
            type: 'line',
            data: {
                labels: labels,
                datasets: [
                    { label: 'min', data: levels.map(l => l.latencyMin), borderColor: '#94a3b8', tension: 0.2, spanGaps: false },
                    { label: 'p50', data: levels.map(l => l.latencyP50), borderColor: '#3b82f6', tension: 0.2, spanGaps: false },
                    { label: 'p90', data: levels.map(l => l.latencyP90), borderColor: '#f59e0b', tension: 0.2, spanGaps: false },
                    { label: 'p99', data: levels.map(l => l.latencyP99), borderColor: '#ef4444', tension: 0.2, spanGaps: false },
                    { label: 'max', data: levels.map(l => l.latencyMax), borderColor: '#64748b', tension: 0.2, spanGaps: false }
                ]
            },
            options: {
                responsive: true,
                scales: { y: { beginAtZero: true, title: { display: true, text: 'seconds' } } }
            }
        });
    </script>
</body>
</html>
`
