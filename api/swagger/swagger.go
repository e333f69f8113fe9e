package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "College Portal API",
        "description": "College administration backend: registration, student and teacher accounts, exam tasks and results.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Colleges",
            "description": "Registration and login"
        },
        {
            "name": "Students",
            "description": "Student account generation"
        },
        {
            "name": "Teachers",
            "description": "Teacher onboarding"
        },
        {
            "name": "ExamTasks",
            "description": "Exam task board"
        },
        {
            "name": "Results",
            "description": "Exam results, queries and exports"
        },
        {
            "name": "Health",
            "description": "Probes"
        }
    ],
    "paths": {
        "/register": {
            "post": {
                "tags": [
                    "Colleges"
                ],
                "summary": "Register a college",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RegisterCollegeRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/login": {
            "post": {
                "tags": [
                    "Colleges"
                ],
                "summary": "College login",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/colleges/me": {
            "get": {
                "tags": [
                    "Colleges"
                ],
                "summary": "Current college profile",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/teachers/create": {
            "post": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Create a teacher",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateTeacherRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": [
                    "Teachers"
                ],
                "summary": "List teachers",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Teachers"
                ],
                "summary": "Create a teacher (alias)",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateTeacherRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/students/bulk-create": {
            "post": {
                "tags": [
                    "Students"
                ],
                "summary": "Create students from a roster",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    },
                    {
                        "name": "dryRun",
                        "in": "query",
                        "type": "boolean",
                        "required": false,
                        "description": "Validate and preview without saving"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BulkCreateStudentsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/students/range-create": {
            "post": {
                "tags": [
                    "Students"
                ],
                "summary": "Create students for a roll number range",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    },
                    {
                        "name": "dryRun",
                        "in": "query",
                        "type": "boolean",
                        "required": false,
                        "description": "Validate and preview without saving"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/RangeCreateStudentsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/students": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "List students",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "X-College-ID",
                        "in": "header",
                        "type": "string",
                        "required": false,
                        "description": "College id, accepted when bearer tokens are not used"
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "division",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/task": {
            "get": {
                "tags": [
                    "ExamTasks"
                ],
                "summary": "List exam tasks by exam date",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "ExamTasks"
                ],
                "summary": "Schedule an exam task",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateExamTaskRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "patch": {
                "tags": [
                    "ExamTasks"
                ],
                "summary": "Change an exam task status",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateExamTaskStatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/results": {
            "get": {
                "tags": [
                    "Results"
                ],
                "summary": "Query results",
                "parameters": [
                    {
                        "name": "studentId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "className",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "subject",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "examId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "teacherId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "minScore",
                        "in": "query",
                        "type": "number",
                        "required": false
                    },
                    {
                        "name": "maxScore",
                        "in": "query",
                        "type": "number",
                        "required": false
                    },
                    {
                        "name": "dateFrom",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "YYYY-MM-DD or RFC 3339"
                    },
                    {
                        "name": "dateTo",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "YYYY-MM-DD or RFC 3339"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "sortBy",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "examDate, score, createdAt, studentId, className, subject or grade"
                    },
                    {
                        "name": "sortOrder",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "asc or desc"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Results"
                ],
                "summary": "Insert a result or run an advanced query",
                "description": "A body carrying any of Student, Class, Subject, Exam, Score, Grade, Status inserts a result (CreateResultRequest). A body limited to filters, pagination and sort runs a query (ResultQueryRequest).",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ResultQueryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/results/export": {
            "get": {
                "tags": [
                    "Results"
                ],
                "summary": "Export results",
                "produces": [
                    "text/csv",
                    "application/pdf",
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "csv, pdf or xlsx"
                    },
                    {
                        "name": "studentId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "className",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "subject",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "examId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "teacherId",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "minScore",
                        "in": "query",
                        "type": "number",
                        "required": false
                    },
                    {
                        "name": "maxScore",
                        "in": "query",
                        "type": "number",
                        "required": false
                    },
                    {
                        "name": "dateFrom",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "YYYY-MM-DD or RFC 3339"
                    },
                    {
                        "name": "dateTo",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "YYYY-MM-DD or RFC 3339"
                    },
                    {
                        "name": "sortBy",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "sortOrder",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File download"
                    },
                    "400": {
                        "description": "Bad request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/test": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Store ping",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Store unreachable"
                    }
                }
            }
        }
    },
    "definitions": {
        "Address": {
            "type": "object",
            "properties": {
                "street": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "state": {
                    "type": "string"
                },
                "zipCode": {
                    "type": "string"
                }
            }
        },
        "Contact": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "RegisterCollegeRequest": {
            "type": "object",
            "required": [
                "collegeName",
                "registrationNumber",
                "email",
                "phoneNumber",
                "address",
                "principal",
                "controller",
                "password"
            ],
            "properties": {
                "collegeName": {
                    "type": "string"
                },
                "registrationNumber": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phoneNumber": {
                    "type": "string"
                },
                "address": {
                    "$ref": "#/definitions/Address"
                },
                "principal": {
                    "$ref": "#/definitions/Contact"
                },
                "controller": {
                    "$ref": "#/definitions/Contact"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "CreateTeacherRequest": {
            "type": "object",
            "required": [
                "firstName",
                "lastName",
                "email",
                "phoneNumber",
                "department",
                "designation",
                "employeeId",
                "joiningDate",
                "password"
            ],
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phoneNumber": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "designation": {
                    "type": "string"
                },
                "employeeId": {
                    "type": "string"
                },
                "specialization": {
                    "type": "string"
                },
                "joiningDate": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "StudentEntry": {
            "type": "object",
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "rollNumber": {
                    "type": "string"
                },
                "division": {
                    "type": "string"
                },
                "year": {
                    "type": "string"
                },
                "course": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                }
            }
        },
        "BulkCreateStudentsRequest": {
            "type": "object",
            "properties": {
                "students": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/StudentEntry"
                    }
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "RangeCreateStudentsRequest": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "string"
                },
                "division": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "startRollNumber": {
                    "type": "string",
                    "description": "string or number; its length sets the zero padding"
                },
                "endRollNumber": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "CreateExamTaskRequest": {
            "type": "object",
            "required": [
                "teacherName",
                "subject",
                "class",
                "dateOfExam"
            ],
            "properties": {
                "teacherName": {
                    "type": "string"
                },
                "subject": {
                    "type": "string"
                },
                "class": {
                    "type": "string"
                },
                "dateOfExam": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Pending",
                        "In Progress",
                        "Completed",
                        "Cancelled"
                    ]
                }
            }
        },
        "UpdateExamTaskStatusRequest": {
            "type": "object",
            "required": [
                "id",
                "status"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Pending",
                        "In Progress",
                        "Completed",
                        "Cancelled"
                    ]
                }
            }
        },
        "CreateResultRequest": {
            "type": "object",
            "required": [
                "Student",
                "Class",
                "Subject",
                "Exam",
                "Score",
                "Grade",
                "Status"
            ],
            "properties": {
                "Student": {
                    "type": "string"
                },
                "Class": {
                    "type": "string"
                },
                "Subject": {
                    "type": "string"
                },
                "Exam": {
                    "type": "string"
                },
                "Score": {
                    "type": "number"
                },
                "Grade": {
                    "type": "string"
                },
                "Status": {
                    "type": "string"
                },
                "TeacherId": {
                    "type": "string"
                },
                "ExamDate": {
                    "type": "string"
                }
            }
        },
        "ResultQueryRequest": {
            "type": "object",
            "properties": {
                "filters": {
                    "type": "object",
                    "properties": {
                        "studentId": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "className": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "subject": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "examId": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "teacherId": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        },
                        "minScore": {
                            "type": "number"
                        },
                        "maxScore": {
                            "type": "number"
                        },
                        "dateFrom": {
                            "type": "string"
                        },
                        "dateTo": {
                            "type": "string"
                        }
                    }
                },
                "pagination": {
                    "type": "object",
                    "properties": {
                        "page": {
                            "type": "integer"
                        },
                        "limit": {
                            "type": "integer"
                        }
                    }
                },
                "sort": {
                    "type": "object",
                    "properties": {
                        "field": {
                            "type": "string"
                        },
                        "order": {
                            "type": "string",
                            "enum": [
                                "asc",
                                "desc"
                            ]
                        }
                    }
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "totalPages": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                },
                "details": {
                    "type": "object"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
