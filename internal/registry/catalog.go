package registry

// builtinCategories is the static Logfire integration catalog. Adding an
// integration is a data-only change here; detection picks it up automatically.
var builtinCategories = []Category{
	{
		Name:        RecommendedCategory,
		Description: "Most commonly used integrations",
		Integrations: []Integration{
			{
				Extra:           "httpx",
				DisplayName:     "HTTPX",
				Description:     "HTTPX HTTP client library",
				PackagePatterns: []string{"httpx"},
			},
			{
				Extra:           "fastapi",
				DisplayName:     "FastAPI",
				Description:     "FastAPI framework instrumentation",
				PackagePatterns: []string{"fastapi"},
			},
			{
				Extra:           "pydantic-ai",
				DisplayName:     "Pydantic AI",
				Description:     "Pydantic AI agent framework instrumentation",
				PackagePatterns: []string{"pydantic-ai", "pydantic_ai"},
			},
			{
				Extra:           "sqlalchemy",
				DisplayName:     "SQLAlchemy",
				Description:     "SQLAlchemy ORM instrumentation",
				PackagePatterns: []string{"sqlalchemy"},
			},
		},
	},
	{
		Name:        "Web Frameworks",
		Description: "Web framework instrumentation",
		Integrations: []Integration{
			{
				Extra:           "django",
				DisplayName:     "Django",
				Description:     "Django web framework (includes ASGI support)",
				PackagePatterns: []string{"django"},
			},
			{
				Extra:           "flask",
				DisplayName:     "Flask",
				Description:     "Flask framework instrumentation",
				PackagePatterns: []string{"flask"},
			},
			{
				Extra:           "starlette",
				DisplayName:     "Starlette",
				Description:     "Starlette framework instrumentation",
				PackagePatterns: []string{"starlette"},
			},
			{
				Extra:           "asgi",
				DisplayName:     "ASGI",
				Description:     "ASGI application instrumentation",
				PackagePatterns: []string{"asgi", "uvicorn", "hypercorn"},
			},
			{
				Extra:           "wsgi",
				DisplayName:     "WSGI",
				Description:     "WSGI application instrumentation",
				PackagePatterns: []string{"wsgi", "gunicorn"},
			},
		},
	},
	{
		Name:        "HTTP Clients",
		Description: "HTTP client library instrumentation",
		Integrations: []Integration{
			{
				Extra:           "requests",
				DisplayName:     "Requests",
				Description:     "Python Requests library HTTP client",
				PackagePatterns: []string{"requests"},
			},
			{
				Extra:           "aiohttp-client",
				DisplayName:     "aiohttp Client",
				Description:     "aiohttp HTTP client tracing",
				PackagePatterns: []string{"aiohttp"},
			},
			{
				Extra:           "aiohttp-server",
				DisplayName:     "aiohttp Server",
				Description:     "aiohttp server/web framework",
				PackagePatterns: []string{"aiohttp"},
			},
		},
	},
	{
		Name:        "Databases",
		Description: "Database client instrumentation",
		Integrations: []Integration{
			{
				Extra:           "asyncpg",
				DisplayName:     "asyncpg",
				Description:     "asyncpg PostgreSQL async driver",
				PackagePatterns: []string{"asyncpg"},
			},
			{
				Extra:           "psycopg",
				DisplayName:     "psycopg",
				Description:     "psycopg PostgreSQL client (v3.x)",
				PackagePatterns: []string{"psycopg"},
			},
			{
				Extra:           "psycopg2",
				DisplayName:     "psycopg2",
				Description:     "psycopg2 PostgreSQL client (legacy)",
				PackagePatterns: []string{"psycopg2", "psycopg2-binary"},
			},
			{
				Extra:           "pymongo",
				DisplayName:     "PyMongo",
				Description:     "PyMongo MongoDB driver",
				PackagePatterns: []string{"pymongo"},
			},
			{
				Extra:           "redis",
				DisplayName:     "Redis",
				Description:     "Redis client instrumentation",
				PackagePatterns: []string{"redis"},
			},
			{
				Extra:           "mysql",
				DisplayName:     "MySQL",
				Description:     "MySQL database driver",
				PackagePatterns: []string{"mysql-connector-python", "pymysql", "mysqlclient"},
			},
			{
				Extra:           "sqlite3",
				DisplayName:     "SQLite3",
				Description:     "SQLite3 database instrumentation",
				PackagePatterns: []string{"sqlite3", "aiosqlite"},
			},
		},
	},
	{
		Name:        "Task Queues",
		Description: "Task queue and message broker instrumentation",
		Integrations: []Integration{
			{
				Extra:           "celery",
				DisplayName:     "Celery",
				Description:     "Celery task queue instrumentation",
				PackagePatterns: []string{"celery"},
			},
		},
	},
	{
		Name:        "Cloud & Serverless",
		Description: "Cloud platform and serverless instrumentation",
		Integrations: []Integration{
			{
				Extra:           "aws-lambda",
				DisplayName:     "AWS Lambda",
				Description:     "AWS Lambda function instrumentation",
				PackagePatterns: []string{"boto3", "botocore"},
			},
		},
	},
	{
		Name:        "LLM & AI",
		Description: "Large language model and AI instrumentation",
		Integrations: []Integration{
			{
				Extra:           "google-genai",
				DisplayName:     "Google GenAI",
				Description:     "Google GenAI instrumentation",
				PackagePatterns: []string{"google-genai", "google-generativeai"},
			},
			{
				Extra:           "litellm",
				DisplayName:     "LiteLLM",
				Description:     "LiteLLM gateway instrumentation",
				PackagePatterns: []string{"litellm"},
			},
		},
	},
	{
		Name:        "System Monitoring",
		Description: "System-level metrics and monitoring",
		Integrations: []Integration{
			{
				Extra:           "system-metrics",
				DisplayName:     "System Metrics",
				Description:     "System-level metrics (CPU, memory, etc.)",
				PackagePatterns: []string{"psutil"},
			},
		},
	},
}
